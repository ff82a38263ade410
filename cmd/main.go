package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/colorlab-io/swatchview/cmd/swatchview"
	"github.com/colorlab-io/swatchview/logging"
	"gitlab.com/greyxor/slogor"
)

func main() {
	slog.SetDefault(slog.New(
		logging.ContextHandler{
			Handler: slogor.NewHandler(os.Stderr,
				slogor.SetLevel(slog.LevelDebug),
				slogor.SetTimeFormat(time.DateTime),
				slogor.ShowSource()),
		}),
	)

	swatchview.Execute()
}
