package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltcrackr/hashfn"
	"saltcrackr/source"
	"saltcrackr/target"
)

func TestRunBatch(t *testing.T) {
	fn := hashfn.MD5Salted()
	src := source.List{"123456", "hunter2", "qwerty", "letmein", "dragon"}

	targets := []target.Descriptor{
		newTarget(t, fn, "alice", "hunter2"),
		newTarget(t, fn, "bob", "not-in-the-list"),
	}

	rec := &recorder{}
	e := newEngine(t, Config{Hash: fn, Reporter: rec})

	results, err := e.RunBatch(context.Background(), targets, src)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, targets[0], results[0].Target)
	assert.Equal(t, Found, results[0].Outcome)
	assert.Equal(t, "hunter2", results[0].Password)
	assert.EqualValues(t, 2, results[0].Tested)

	assert.Equal(t, targets[1], results[1].Target)
	assert.Equal(t, NotFound, results[1].Outcome)
	assert.EqualValues(t, 5, results[1].Tested)

	assert.Len(t, rec.results, 2)
}

func TestRunBatch_Empty(t *testing.T) {
	e := newEngine(t, Config{})

	results, err := e.RunBatch(context.Background(), nil, source.List{"a"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunBatch_PartialFailure(t *testing.T) {
	fn := hashfn.MD5Salted()
	targets := []target.Descriptor{
		newTarget(t, fn, "a", "x"),
		newTarget(t, fn, "b", "y"),
		newTarget(t, fn, "c", "z"),
	}

	results, err := newEngine(t, Config{Hash: fn}).RunBatch(context.Background(), targets, brokenSource{yield: 1})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, targets[i], res.Target)
		assert.Equal(t, Failed, res.Outcome)
	}
}

func TestRunBatch_Parallel(t *testing.T) {
	fn := hashfn.MD5Salted()

	words := make(source.List, 20)
	for i := range words {
		words[i] = fmt.Sprintf("pw%02d", i)
	}

	targets := make([]target.Descriptor, 10)
	for i := range targets {
		targets[i] = newTarget(t, fn, fmt.Sprintf("user%d", i), words[i*2])
	}
	targets = append(targets, newTarget(t, fn, "ghost", "absent"))

	rec := &recorder{}
	e := newEngine(t, Config{Hash: fn, Workers: 4, ReportEvery: 1, Reporter: rec})

	results, err := e.RunBatch(context.Background(), targets, words)
	require.NoError(t, err)
	require.Len(t, results, len(targets))

	for i := 0; i < 10; i++ {
		assert.Equal(t, targets[i], results[i].Target)
		assert.Equal(t, Found, results[i].Outcome)
		assert.Equal(t, words[i*2], results[i].Password)
		assert.EqualValues(t, i*2+1, results[i].Tested)
	}

	last := results[len(results)-1]
	assert.Equal(t, NotFound, last.Outcome)
	assert.EqualValues(t, len(words), last.Tested)

	assert.Len(t, rec.results, len(targets))
}

func TestRunBatch_Cancelled(t *testing.T) {
	fn := hashfn.MD5Salted()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	targets := []target.Descriptor{newTarget(t, fn, "a", "x"), newTarget(t, fn, "b", "y")}
	results, err := newEngine(t, Config{Hash: fn, Workers: 2}).RunBatch(ctx, targets, source.List{"x", "y"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, res := range results {
		assert.Equal(t, Cancelled, res.Outcome)
	}
}
