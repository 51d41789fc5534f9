package linetree

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ln(x1, y1, x2, y2 float64) Line { return Line{{x1, y1}, {x2, y2}} }

func TestFlattenScenarios(t *testing.T) {
	tests := []struct {
		name  string
		in    Tree
		close bool
		want  Flat
	}{
		{
			name: "shallow line",
			in:   ln(1, 2, 2, 5),
			want: Flat{ln(1, 2, 2, 5)},
		},
		{
			name: "list of lines",
			in:   Node{ln(1, 2, 2, 5), ln(-6, 1, 5, -1)},
			want: Flat{ln(1, 2, 2, 5), ln(-6, 1, 5, -1)},
		},
		{
			name: "nested one level deeper",
			in:   Node{Node{ln(1, 2, 2, 5), ln(-6, 1, 5, -1)}, ln(2, 5, 3, 1)},
			want: Flat{ln(1, 2, 2, 5), ln(-6, 1, 5, -1), ln(2, 5, 3, 1)},
		},
		{
			name:  "closing a triangle",
			in:    Node{Path{{0, 0}, {1, 0}, {1, 1}}},
			close: true,
			want:  Flat{Path{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		},
		{
			name:  "lines are never closed",
			in:    Node{ln(0, 0, 1, 1), Path{{0, 0}, {1, 0}, {1, 1}}},
			close: true,
			want:  Flat{ln(0, 0, 1, 1), Path{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		},
		{
			name: "empty nodes contribute nothing",
			in:   Node{Node{}, Node{Node{}}, ln(0, 0, 1, 1)},
			want: Flat{ln(0, 0, 1, 1)},
		},
		{
			name: "empty tree",
			in:   Node{},
			want: Flat{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Flatten(tt.in, tt.close)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlattenInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   Tree
		pos  []int
	}{
		{"nil tree", nil, []int{}},
		{"nil child", Node{ln(0, 0, 1, 1), nil}, []int{1}},
		{"short path", Node{Node{Path{{0, 0}, {1, 1}}}}, []int{0, 0}},
		{"nan in line", Node{ln(math.NaN(), 0, 1, 1)}, []int{0}},
		{"inf in path", Path{{0, 0}, {math.Inf(1), 0}, {1, 1}}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flatten(tt.in, false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInputKind))
			var ie *InvalidInputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.pos, ie.Pos)
		})
	}
}

func TestFlattenDoesNotMutateInput(t *testing.T) {
	p := Path{{0, 0}, {1, 0}, {1, 1}}
	in := Node{p}
	_, err := Flatten(in, true)
	require.NoError(t, err)
	assert.Len(t, p, 3)
	assert.Equal(t, Path{{0, 0}, {1, 0}, {1, 1}}, in[0])
}

func TestFlattenProperties(t *testing.T) {
	a := Node{ln(1, 2, 2, 5), Node{Path{{0, 0}, {1, 0}, {1, 1}}, ln(3, 3, 4, 4)}}
	b := Node{Node{Node{ln(-1, -1, 0, 0)}}, Path{{5, 5}, {6, 5}, {6, 6}, {5, 6}}}
	tree := Node{a, b}

	flat, err := Flatten(tree, false)
	require.NoError(t, err)

	t.Run("idempotent", func(t *testing.T) {
		again, err := Flatten(flat.Node(), false)
		require.NoError(t, err)
		assert.Equal(t, flat, again)
	})

	t.Run("leaf count", func(t *testing.T) {
		leaves := 0
		require.NoError(t, Walk(tree, func(Drawable) error { leaves++; return nil }))
		assert.Equal(t, 5, leaves)
		assert.Len(t, flat, leaves)
	})

	t.Run("order", func(t *testing.T) {
		fa, err := Flatten(a, false)
		require.NoError(t, err)
		fb, err := Flatten(b, false)
		require.NoError(t, err)
		assert.Equal(t, append(fa, fb...), flat)
	})

	t.Run("closing is per path", func(t *testing.T) {
		closed, err := Flatten(tree, true)
		require.NoError(t, err)
		require.Len(t, closed, len(flat))
		for i, d := range closed {
			switch orig := flat[i].(type) {
			case Line:
				assert.Equal(t, orig, d)
			case Path:
				assert.Equal(t, append(append(Path{}, orig...), orig[0]), d)
			}
		}
	})
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	seen := 0
	err := Walk(Node{ln(0, 0, 1, 1), ln(1, 1, 2, 2), ln(2, 2, 3, 3)}, func(Drawable) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

func TestConstructors(t *testing.T) {
	_, err := NewPath(Point{0, 0}, Point{1, 1})
	assert.ErrorIs(t, err, ErrInvalidInputKind)

	_, err = NewLine(Point{math.NaN(), 0}, Point{1, 1})
	assert.ErrorIs(t, err, ErrInvalidInputKind)

	pts := []Point{{0, 0}, {1, 0}, {1, 1}}
	p, err := NewPath(pts...)
	require.NoError(t, err)
	pts[0] = Point{9, 9}
	assert.Equal(t, Point{0, 0}, p[0])
}

func TestInvalidInputErrorMessage(t *testing.T) {
	_, err := Flatten(Node{Node{nil}}, false)
	require.Error(t, err)
	assert.True(t, strings.HasSuffix(err.Error(), "at /0/0"), err.Error())
}

func TestFlatHelpers(t *testing.T) {
	f := Flat{ln(0, 0, 1, 1), Path{{0, 0}, {1, 0}, {1, 1}}}
	lines, paths, points := f.Count()
	assert.Equal(t, 1, lines)
	assert.Equal(t, 1, paths)
	assert.Equal(t, 5, points)
	assert.Equal(t, [][]Point{{{0, 0}, {1, 1}}, {{0, 0}, {1, 0}, {1, 1}}}, f.Polylines())
}
