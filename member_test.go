package enumerate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enumerate"
)

func TestKindNew(t *testing.T) {
	// Arrange
	kind := enumerate.NewKind("Season")

	// Act
	m, err := kind.New("Winter")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "Season", kind.Name())
	require.False(t, kind.Sealed())

	require.Equal(t, "Winter", m.Description())
	require.Same(t, kind, m.Kind())
	require.Equal(t, -1, m.Ordinal())
	require.Equal(t, "", m.PropertyName())
	require.Equal(t, "Season.<unsealed>", m.String())
}

func TestMemberAfterSealing(t *testing.T) {
	// Arrange
	r := enumerate.NewRegistry()
	kind := enumerate.NewKind("Season")

	m, err := kind.New("Winter")
	require.Nil(t, err)

	// Act
	_, err = enumerate.Seal(r, "Season", kind, []enumerate.Declaration[*enumerate.Member]{
		{Name: "WINTER", Member: m},
	})

	// Assert
	require.Nil(t, err)
	require.True(t, kind.Sealed())
	require.Equal(t, 0, m.Ordinal())
	require.Equal(t, "WINTER", m.PropertyName())
	require.Equal(t, "Season.WINTER", m.String())
}
