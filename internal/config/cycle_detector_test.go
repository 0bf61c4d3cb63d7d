package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, indexOf([]string{"a", "b"}, "a"))
	require.Equal(t, 1, indexOf([]string{"a", "b"}, "b"))
	require.Equal(t, -1, indexOf([]string{"a", "b"}, "c"))
	require.Equal(t, -1, indexOf(nil, "a"))
}

func TestDetectCycle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		controls []Control
		want     []string
	}{
		{
			name:     "no controls",
			controls: nil,
		},
		{
			name: "linear chain",
			controls: []Control{
				{Name: "PushButton", Parent: "AbstractButton"},
				{Name: "AbstractButton", Parent: "Control"},
				{Name: "Control"},
			},
		},
		{
			name: "two controls point at each other",
			controls: []Control{
				{Name: "A", Parent: "B"},
				{Name: "B", Parent: "A"},
			},
			want: []string{"A", "B", "A"},
		},
		{
			name: "cycle behind a tail",
			controls: []Control{
				{Name: "Leaf", Parent: "X"},
				{Name: "X", Parent: "Y"},
				{Name: "Y", Parent: "Z"},
				{Name: "Z", Parent: "X"},
			},
			want: []string{"X", "Y", "Z", "X"},
		},
		{
			name: "self reference",
			controls: []Control{
				{Name: "Loop", Parent: "Loop"},
			},
			want: []string{"Loop", "Loop"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, detectCycle(tc.controls))
		})
	}
}
