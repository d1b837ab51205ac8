// Package idutilstest provides deterministic id generators for tests.
package idutilstest

import "todo-list/pkg/util/idutils"

// SequenceIDGenerator hands out the given ids in order and then repeats the last one.
type SequenceIDGenerator struct {
	ids  []string
	next int
	err  error
}

var _ idutils.IDGenerator = (*SequenceIDGenerator)(nil)

func NewSequenceIDGenerator(ids ...string) *SequenceIDGenerator {
	return &SequenceIDGenerator{ids: ids}
}

// NewFailingIDGenerator returns a generator whose NewID always fails with err.
func NewFailingIDGenerator(err error) *SequenceIDGenerator {
	return &SequenceIDGenerator{err: err}
}

func (g *SequenceIDGenerator) NewID() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if len(g.ids) == 0 {
		return "", nil
	}
	id := g.ids[g.next]
	if g.next < len(g.ids)-1 {
		g.next++
	}
	return id, nil
}
