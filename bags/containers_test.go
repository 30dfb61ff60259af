package bags_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bagraph/bags"
)

func TestCountContainersOf_Sample(t *testing.T) {
	g := build(t, loadLines(t, "sample.txt"))
	ctx := context.Background()

	n, err := g.CountContainersOf(ctx, "shiny gold")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	cs, err := g.ContainersOf(ctx, "shiny gold")
	require.NoError(t, err)
	assert.Equal(t, []bags.Container{
		{Color: "bright white", Depth: 1},
		{Color: "muted yellow", Depth: 1},
		{Color: "dark orange", Depth: 2},
		{Color: "light red", Depth: 2},
	}, cs)
}

func TestCountContainersOf_Roots(t *testing.T) {
	g := build(t, loadLines(t, "sample.txt"))

	for _, color := range []string{"light red", "dark orange"} {
		n, err := g.CountContainersOf(context.Background(), color)
		require.NoError(t, err)
		assert.Zero(t, n, color)
	}

	n, err := g.CountContainersOf(context.Background(), "faded blue")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestCountContainersOf_OrderInvariant(t *testing.T) {
	lines := loadLines(t, "sample.txt")
	want := make(map[string]int)
	g := build(t, lines)
	for _, c := range g.Colors() {
		n, err := g.CountContainersOf(context.Background(), c)
		require.NoError(t, err)
		want[c] = n
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		shuffled := append([]string(nil), lines...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		g := build(t, shuffled)
		for c, n := range want {
			got, err := g.CountContainersOf(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, n, got, "color %q after shuffle %d", c, i)
		}
	}
}

func TestCountContainersOf_Cycles(t *testing.T) {
	g := build(t, []string{
		"light red bags contain 1 dark blue bag.",
		"dark blue bags contain 2 light red bags.",
		"plaid bags contain 1 light red bag.",
		"shiny gold bags contain 1 shiny gold bag.",
		"faded blue bags contain 1 dark blue bag.",
	})
	ctx := context.Background()

	// light red is inside dark blue, which is inside light red again
	cs, err := g.ContainersOf(ctx, "light red")
	require.NoError(t, err)
	assert.Equal(t, []bags.Container{
		{Color: "dark blue", Depth: 1},
		{Color: "plaid", Depth: 1},
		{Color: "faded blue", Depth: 2},
		{Color: "light red", Depth: 2},
	}, cs)

	n, err := g.CountContainersOf(ctx, "shiny gold")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "a self-containing bag holds itself")

	n, err = g.CountContainersOf(ctx, "plaid")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountContainersOf_Errors(t *testing.T) {
	g := build(t, loadLines(t, "sample.txt"))

	_, err := g.CountContainersOf(context.Background(), "plaid")
	assert.ErrorIs(t, err, bags.ErrUnknownColor)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.CountContainersOf(ctx, "shiny gold")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContainmentPath_Sample(t *testing.T) {
	g := build(t, loadLines(t, "sample.txt"))
	ctx := context.Background()

	cases := []struct {
		outer, inner string
		want         []string
	}{
		{outer: "light red", inner: "shiny gold", want: []string{"light red", "bright white", "shiny gold"}},
		{outer: "dark orange", inner: "shiny gold", want: []string{"dark orange", "bright white", "shiny gold"}},
		{outer: "light red", inner: "faded blue", want: []string{"light red", "muted yellow", "faded blue"}},
		{outer: "shiny gold", inner: "dotted black", want: []string{"shiny gold", "dark olive", "dotted black"}},
		{outer: "muted yellow", inner: "faded blue", want: []string{"muted yellow", "faded blue"}},
	}
	for _, tc := range cases {
		t.Run(tc.outer+" holds "+tc.inner, func(t *testing.T) {
			path, err := g.ContainmentPath(ctx, tc.outer, tc.inner)
			require.NoError(t, err)
			assert.Equal(t, tc.want, path)
		})
	}
}

// TestContainmentPath_AgreesWithContainers checks that a chain exists for
// exactly the colors ContainersOf reports, and that its length matches Depth.
func TestContainmentPath_AgreesWithContainers(t *testing.T) {
	g := build(t, loadLines(t, "sample.txt"))
	ctx := context.Background()

	for _, inner := range g.Colors() {
		cs, err := g.ContainersOf(ctx, inner)
		require.NoError(t, err)
		depth := make(map[string]int, len(cs))
		for _, c := range cs {
			depth[c.Color] = c.Depth
		}

		for _, outer := range g.Colors() {
			path, err := g.ContainmentPath(ctx, outer, inner)
			d, ok := depth[outer]
			if !ok {
				assert.ErrorIs(t, err, bags.ErrNotContained, "%s in %s", inner, outer)
				continue
			}
			require.NoError(t, err)
			assert.Len(t, path, d+1, "%s in %s", inner, outer)
			assert.Equal(t, outer, path[0])
			assert.Equal(t, inner, path[len(path)-1])
		}
	}
}

func TestContainmentPath_Cycles(t *testing.T) {
	g := build(t, []string{
		"light red bags contain 1 dark blue bag.",
		"dark blue bags contain 2 light red bags.",
		"plaid bags contain 1 light red bag.",
		"shiny gold bags contain 1 shiny gold bag.",
		"faded blue bags contain 1 dark blue bag.",
	})
	ctx := context.Background()

	path, err := g.ContainmentPath(ctx, "light red", "light red")
	require.NoError(t, err)
	assert.Equal(t, []string{"light red", "dark blue", "light red"}, path)

	path, err = g.ContainmentPath(ctx, "shiny gold", "shiny gold")
	require.NoError(t, err)
	assert.Equal(t, []string{"shiny gold", "shiny gold"}, path)

	path, err = g.ContainmentPath(ctx, "faded blue", "light red")
	require.NoError(t, err)
	assert.Equal(t, []string{"faded blue", "dark blue", "light red"}, path)

	_, err = g.ContainmentPath(ctx, "plaid", "plaid")
	assert.ErrorIs(t, err, bags.ErrNotContained)
}

func TestContainmentPath_Errors(t *testing.T) {
	g := build(t, loadLines(t, "sample.txt"))

	_, err := g.ContainmentPath(context.Background(), "faded blue", "shiny gold")
	assert.ErrorIs(t, err, bags.ErrNotContained)
	assert.EqualError(t, err, `bags: not contained: "shiny gold" in "faded blue"`)

	_, err = g.ContainmentPath(context.Background(), "shiny gold", "shiny gold")
	assert.ErrorIs(t, err, bags.ErrNotContained)

	_, err = g.ContainmentPath(context.Background(), "plaid", "shiny gold")
	assert.ErrorIs(t, err, bags.ErrUnknownColor)
	_, err = g.ContainmentPath(context.Background(), "light red", "plaid")
	assert.ErrorIs(t, err, bags.ErrUnknownColor)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.ContainmentPath(ctx, "light red", "shiny gold")
	assert.ErrorIs(t, err, context.Canceled)
}
