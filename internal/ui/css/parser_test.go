package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sheet, err := Parse(`
/* file input */
.file-button { background: #efefef; border: #767676; padding: 6px }
.file-button:hover { background: #e5e5e5; }
#status, .hint { color: #333 }
body { margin: 0 }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)

	assert.Equal(t, Selector{Class: "file-button"}, sheet.Rules[0].Selector)
	assert.Equal(t, "#efefef", sheet.Rules[0].Props["background"])
	assert.Equal(t, "6px", sheet.Rules[0].Props["padding"])
	assert.Equal(t, Selector{Class: "file-button", Hover: true}, sheet.Rules[1].Selector)
	assert.Equal(t, Selector{ID: "status"}, sheet.Rules[2].Selector)
	assert.Equal(t, Selector{Class: "hint"}, sheet.Rules[3].Selector)
}

func TestParse_Unterminated(t *testing.T) {
	sheet, err := Parse(".a { color: #fff } .b { color: #000")
	assert.ErrorIs(t, err, ErrUnterminated)
	require.Len(t, sheet.Rules, 1)
}

func TestParse_UnclosedComment(t *testing.T) {
	sheet, err := Parse(".a { color: #fff } /* .b { color: #000 }")
	require.NoError(t, err)
	assert.Len(t, sheet.Rules, 1)
}

func TestParse_ValueTokens(t *testing.T) {
	sheet, err := Parse(".hint{left:50%;top:-4px;color:#ABCDEF;/* note */font-size:14px}")
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)

	assert.Equal(t, map[string]string{
		"left":      "50%",
		"top":       "-4px",
		"color":     "#ABCDEF",
		"font-size": "14px",
	}, sheet.Rules[0].Props)
}

func TestParse_CommentedOutBraces(t *testing.T) {
	sheet, err := Parse(".a { color: #fff } /* } */ .b { color: #000")
	assert.ErrorIs(t, err, ErrUnterminated)
	require.Len(t, sheet.Rules, 1)
	assert.Equal(t, Selector{Class: "a"}, sheet.Rules[0].Selector)
}

func TestStylesheet_Match(t *testing.T) {
	sheet, err := Parse(`
.btn { background: #efefef; color: #000 }
.btn:hover { background: #e5e5e5 }
#open { color: #111 }
`)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"background": "#efefef", "color": "#000"}, sheet.Match("btn", "", false))
	assert.Equal(t, "#e5e5e5", sheet.Match("btn", "", true)["background"])
	assert.Equal(t, "#111", sheet.Match("", "open", false)["color"])
	assert.Empty(t, sheet.Match("other", "", true))

	var nilSheet *Stylesheet
	assert.Empty(t, nilSheet.Match("btn", "", false))
}
