package playlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full attribute set", func(t *testing.T) {
		input := `#EXTM3U
#EXTINF:-1 tvg-name="radio-x" tvg-logo="http://example.com/x.png" tvg-country="FR" group-title="News",Radio X
http://example.com/stream.mp3
`
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 1)

		st := stations[0]
		assert.Equal(t, "Radio X", st.Name)
		assert.Equal(t, "radio-x", st.TvgName)
		assert.Equal(t, "http://example.com/x.png", st.LogoURL)
		assert.Equal(t, "FR", st.Country)
		assert.Equal(t, "News", st.Group)
		assert.Equal(t, "http://example.com/stream.mp3", st.URL)
	})

	t.Run("attributes are optional", func(t *testing.T) {
		input := "#EXTINF:-1,Bare Station\nhttp://example.com/bare\n"
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, "Bare Station", stations[0].Name)
		assert.Empty(t, stations[0].LogoURL)
		assert.Empty(t, stations[0].Group)
	})

	t.Run("output count equals metadata-url pairs", func(t *testing.T) {
		input := `#EXTM3U
#EXTINF:-1,First
http://example.com/1
#EXTINF:-1,Dropped without URL
#EXTINF:-1,Second
http://example.com/2
#EXTINF:-1,Trailing unpaired
`
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 2)
		assert.Equal(t, "First", stations[0].Name)
		assert.Equal(t, "Second", stations[1].Name)
	})

	t.Run("blank lines and comments between pair", func(t *testing.T) {
		input := "#EXTINF:-1,Radio Y\n\n# a comment\nhttp://example.com/y\n"
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, "http://example.com/y", stations[0].URL)
	})

	t.Run("url without open accumulator is ignored", func(t *testing.T) {
		input := "http://example.com/orphan\n#EXTINF:-1,Radio Z\nhttp://example.com/z\n"
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, "Radio Z", stations[0].Name)
	})

	t.Run("playlist order preserved without dedupe", func(t *testing.T) {
		input := `#EXTINF:-1,B Station
http://example.com/same
#EXTINF:-1,A Station
http://example.com/same
`
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 2)
		assert.Equal(t, "B Station", stations[0].Name)
		assert.Equal(t, "A Station", stations[1].Name)
	})

	t.Run("name wins over tvg-name for display", func(t *testing.T) {
		input := "#EXTINF:-1 tvg-name=\"alt-name\",Display Name\nhttp://example.com/s\n"
		stations, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, stations, 1)
		assert.Equal(t, "Display Name", stations[0].Name)
		assert.Equal(t, "alt-name", stations[0].TvgName)
	})

	t.Run("empty input", func(t *testing.T) {
		stations, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, stations)
	})
}
