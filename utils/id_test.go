package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		require.Len(t, id, 4, "ID should be a 4-character string")

		n, err := strconv.Atoi(id)
		require.NoError(t, err, "ID should be numeric")
		require.GreaterOrEqual(t, n, 1000)
		require.LessOrEqual(t, n, 9999)
	}
}
