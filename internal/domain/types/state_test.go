package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scaffolding/internal/domain/types"
)

func describe(s types.TriState[int]) string {
	return types.Match(s,
		func() string { return "loading" },
		func(v int) string { return "ok" },
		func(msg string) string { return "err:" + msg },
	)
}

func TestTriState_Variants(t *testing.T) {
	assert.Equal(t, "loading", describe(types.Loading[int]()))
	assert.Equal(t, "loading", describe(types.TriState[int]{}))
	assert.Equal(t, "ok", describe(types.Success(3)))
	assert.Equal(t, "err:bad", describe(types.Failed[int]("bad")))

	v, ok := types.Success(3).Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = types.Failed[int]("x").Value()
	assert.False(t, ok)
	_, ok = types.Success(1).Message()
	assert.False(t, ok)
}

func TestFailed_EmptyMessage(t *testing.T) {
	msg, ok := types.Failed[int]("").Message()
	assert.True(t, ok)
	assert.Equal(t, types.DefaultErrorMessage, msg)
}

func TestHomeState_AxesIndependent(t *testing.T) {
	s := types.InitialHomeState()
	g := s.WithGreeting(types.Success("hi"))

	assert.Equal(t, types.StatusLoading, s.Greeting.Status())
	assert.Equal(t, types.StatusSuccess, g.Greeting.Status())
	assert.Equal(t, types.StatusLoading, g.Records.Status())
	assert.False(t, g.Settled())

	r := g.WithRecords(types.Failed[[]types.Record]("x"))
	assert.Equal(t, types.StatusSuccess, r.Greeting.Status())
	assert.True(t, r.Settled())
}

func TestHomeState_RecordsAreCopied(t *testing.T) {
	recs := types.AndroidReleases()
	s := types.InitialHomeState().WithRecords(types.Success(recs))
	recs[0].Name = "mutated"

	got, _ := s.Records.Value()
	assert.Equal(t, "Cupcake", got[0].Name)
}

func TestAndroidReleases(t *testing.T) {
	a := types.AndroidReleases()
	assert.Len(t, a, 18)
	assert.Equal(t, types.Record{Name: "Pie", Version: "9"}, a[13])
	a[0].Name = "x"
	assert.Equal(t, "Cupcake", types.AndroidReleases()[0].Name)
}

func TestHomeState_CloneSharesNoRecords(t *testing.T) {
	s := types.InitialHomeState().WithRecords(types.Success(types.AndroidReleases()))
	c := s.Clone()

	recs, _ := c.Records.Value()
	recs[0].Name = "mutated"

	orig, _ := s.Records.Value()
	assert.Equal(t, "Cupcake", orig[0].Name)
	assert.Equal(t, types.InitialHomeState().Clone(), types.InitialHomeState())
}
