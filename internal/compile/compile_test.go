package compile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gbcc/internal/game"
	"gbcc/internal/validate"
)

func validGame() *game.Game {
	g := game.New("demo")
	g.SceneOrder = []string{"title"}
	g.Scenes = map[string]*game.Scene{"title": {Name: "title"}}
	g.StartScene = "title"
	return g
}

func invalidGame() *game.Game {
	g := validGame()
	g.Sprites = []game.Sprite{
		{Name: "a", OAMSlot: 0},
		{Name: "b", OAMSlot: 0},
	}
	return g
}

func TestCompileReturnsCodeForValidGame(t *testing.T) {
	out, err := Compile(validGame())
	require.NoError(t, err)
	require.Contains(t, out, `#include <gb/gb.h>`)
}

func TestCompileReturnsValidationExceptionForInvalidGame(t *testing.T) {
	out, err := Compile(invalidGame())
	require.Empty(t, out)
	require.Error(t, err)

	var verr *ValidationException
	require.ErrorAs(t, err, &verr)
	require.False(t, verr.Result.IsValid())
	require.NotEmpty(t, verr.Error())
}

func TestCompileWarnOnlyAlwaysGeneratesAndLogsEveryDiagnostic(t *testing.T) {
	var logged []validate.Diag
	out := CompileWarnOnly(invalidGame(), func(d validate.Diag) {
		logged = append(logged, d)
	})
	require.Contains(t, out, `#include <gb/gb.h>`)
	require.NotEmpty(t, logged)
}

func TestCompileForTestSkipsValidation(t *testing.T) {
	out := CompileForTest(invalidGame())
	require.Contains(t, out, `#include <gb/gb.h>`)
}

func TestCompileWithValidationReturnsBothRegardlessOfErrors(t *testing.T) {
	out, result := CompileWithValidation(invalidGame())
	require.Contains(t, out, `#include <gb/gb.h>`)
	require.False(t, result.IsValid())
}
