package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values (sites, mostly) into random
// readable names. It flagrantly leaks memory but generates the names lazily,
// so it's not a problem unless you're actually using it. Two sites a hair
// apart print almost identically; their names don't.

var (
	memo   map[interface{}]string
	memoMu sync.Mutex
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
