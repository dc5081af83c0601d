package enumerate_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enumerate"
	"github.com/xy-planning-network/enumerate/logger"
)

func TestRegistryLookup(t *testing.T) {
	// Arrange
	r := enumerate.NewRegistry()
	newSeasonGroup(t, r)

	// Act
	members, ok := r.Lookup("Season")

	// Assert
	require.True(t, ok)
	require.Len(t, members, 4)
	require.Equal(t, "SPRING", members[0].PropertyName())
	require.Equal(t, "WINTER", members[3].PropertyName())

	// each Lookup hands out a fresh slice
	members[0] = members[3]
	fresh, ok := r.Lookup("Season")
	require.True(t, ok)
	require.Equal(t, "SPRING", fresh[0].PropertyName())

	_, ok = r.Lookup("Climate")
	require.False(t, ok)
}

func TestRegistryNames(t *testing.T) {
	// Arrange
	r := enumerate.NewRegistry()
	newSeasonGroup(t, r)

	kind := enumerate.NewKind("Flavor")
	sweet, err := kind.New("Sweet")
	require.Nil(t, err)

	_, err = enumerate.Seal(r, "Flavor", kind, []enumerate.Declaration[*enumerate.Member]{
		{Name: "SWEET", Member: sweet},
	})
	require.Nil(t, err)

	// Act + Assert
	require.Equal(t, []string{"Flavor", "Season"}, r.Names())
	require.Equal(t, 2, r.Count())
}

func TestRegistryLogsSealing(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelDebug),
	)
	r := enumerate.NewRegistry(enumerate.WithLogger(l))

	// Act
	newSeasonGroup(t, r)

	// Assert
	require.Contains(t, b.String(), `sealed "Season" with 4 members`)
	require.Contains(t, b.String(), `"kind":"Season"`)
}
