package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankTableHTML = `
<html><body>
<table class="wikitable sortable">
<tbody>
<tr><th>Rank</th><th>Port</th><th>TEU</th></tr>
<tr><td><a href="/wiki/Port_of_Shanghai">Port of Shanghai</a></td><td>China</td><td>47,303</td></tr>
<tr><td><a href="/wiki/Port_of_Singapore">Singapore</a></td><td>Singapore</td><td>38,800</td></tr>
<tr><td></td><td><a href="/wiki/Port_of_Ningbo">Ningbo-Zhoushan</a></td><td>33,350</td></tr>
<tr><td><a href="/wiki/Port_of_Shenzhen">Shenzhen</a></td><td>China</td><td>29,880</td></tr>
</tbody>
</table>
</body></html>`

func TestParseRankTable(t *testing.T) {
	ranks, err := ParseRankTable(strings.NewReader(rankTableHTML), 30)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"shanghai":        1,
		"singapore":       2,
		"ningbo-zhoushan": 3,
		"shenzhen":        4,
	}, ranks)
}

func TestParseRankTableLimit(t *testing.T) {
	ranks, err := ParseRankTable(strings.NewReader(rankTableHTML), 2)
	require.NoError(t, err)
	assert.Len(t, ranks, 2)
	assert.Equal(t, 1, ranks["shanghai"])
	assert.Equal(t, 2, ranks["singapore"])
}

func TestParseRankTableNoTable(t *testing.T) {
	_, err := ParseRankTable(strings.NewReader("<html><body><p>moved</p></body></html>"), 10)
	assert.Error(t, err)
}
