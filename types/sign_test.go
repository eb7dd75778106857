package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignOfCoherence(t *testing.T) {
	for _, eps := range []float64{EpsSingle, EpsDouble, EpsExtended} {
		for _, x := range []float64{-1, -eps / 2, 0, eps / 2, 1} {
			require.Equal(t, SignOf(-x, eps), SignOf(x, eps).Negate(), "eps=%v x=%v", eps, x)
			if SignOf(x, eps) == Zero {
				require.LessOrEqual(t, absFloat(x), eps)
			} else {
				require.Greater(t, absFloat(x), eps)
			}
		}
	}
}

func TestSignOrdering(t *testing.T) {
	require.Less(t, int(Neg), int(Zero))
	require.Less(t, int(Zero), int(Pos))
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
