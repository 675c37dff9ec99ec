package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This turns mesh element ids into random readable names. Ids are small
// integers that all look alike in a dump of a few hundred half-edges, and a
// name like "BraveOtter" is much easier to follow between tables. It leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it.

type key struct {
	kind string
	id   int
}

var memo map[key]string

func init() {
	memo = make(map[key]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name for an element of the given kind ("face", "edge", ...). Negative ids
// are the mesh's "unset" sentinels.
func Name(kind string, id int) string {
	if id < 0 {
		return "Ø"
	}

	k := key{kind, id}
	if r, ok := memo[k]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[k] = r
	return r
}
