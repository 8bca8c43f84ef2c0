//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLandingScreenRenders(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())

	require.True(t, tf.SeePlain("People"), "Should show the title bar")
	require.True(t, tf.SeePlain("Recent"), "Should show the Recent tab")
	require.True(t, tf.SeePlain("Followed"), "Should show the Followed tab")
	require.True(t, tf.SeePlain("Search for an Associate"), "Should show the prompt")

	// A default config is written on first start
	_, err := os.Stat(tf.ConfigPath())
	require.NoError(t, err, "Config file should be created")
}

func TestSearchShowsPlaceholderResults(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Search for an Associate"))

	tf.Mark()
	require.NoError(t, tf.SendKeys(KeySearch))
	require.True(t, tf.SeePlain("Press enter to begin search"), "Search bar should replace the title bar")

	require.NoError(t, tf.SendKeys(KeyEnter))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, tf.SendKeys("ann"))
	require.True(t, tf.SeePlain(`Result 0 for "ann"`), "Should list placeholder results")
	require.True(t, tf.SeePlain("Description of result 0"))

	// Clear and close returns to the title bar
	tf.Mark()
	require.NoError(t, tf.SendKeys(KeyCtrlX))
	require.True(t, tf.SeePlain("Search for an Associate"))
	require.True(t, tf.SeePlain("Followed"))
}

func TestQuitExitsCleanly(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("People"))

	require.NoError(t, tf.SendKeys(KeyQuit))
	require.NoError(t, tf.WaitExit(3*time.Second))
}

func TestCustomConfigTitleAndTabs(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig(`title = "Associates"
tabs = ["Recent", "Followed", "Nearby"]
`))
	require.NoError(t, tf.StartApp())

	require.True(t, tf.SeePlain("Associates"), "Should use the configured title")
	require.True(t, tf.SeePlain("Nearby"), "Should show the configured tabs")
}
