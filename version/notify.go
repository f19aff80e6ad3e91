package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/util"
	"github.com/spf13/viper"
)

// Notify prints a notice to w when a newer release than the running one exists.
func Notify(w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := NewChecker().Latest(ctx)
	erase()

	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(releasesURL+latest),
	)
}
