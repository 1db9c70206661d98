// Package version tracks the running release and discovers newer ones.
package version

import (
	"fmt"

	"github.com/lectern-cli/lectern/constant"
	"github.com/lectern-cli/lectern/icon"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/style"
	"github.com/lectern-cli/lectern/util"
	"github.com/spf13/viper"
)

// Notify prints a terminal alert when a newer stable release is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if !updateAvailable(version, err) {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(style.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/lectern-cli/lectern/releases/tag/v"+version),
	)
}

// updateAvailable reports whether latest names a release newer than the
// running one. A failed or unparsable lookup never produces a notice.
func updateAvailable(latest string, err error) bool {
	if err != nil {
		return false
	}

	comp, err := Compare(latest, constant.Version)
	return err == nil && comp > 0
}
