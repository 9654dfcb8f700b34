package update

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/confluentinc/cfnkit/internal/build_info"
)

const slug = "confluentinc/cfnkit"

type UpdaterOpts struct {
	Force     bool
	CheckOnly bool
}

type Updater struct {
	opts           UpdaterOpts
	currentVersion string
	in             io.Reader
}

func NewUpdater(opts UpdaterOpts) *Updater {
	return &Updater{
		opts:           opts,
		currentVersion: build_info.Version,
		in:             os.Stdin,
	}
}

func (u *Updater) Run(ctx context.Context) error {
	if build_info.IsDev() && !u.opts.Force {
		slog.Info("🤖 development version detected, skipping update check. Use `--force` to install latest version.")
		return nil
	}

	exePath, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if !u.opts.CheckOnly {
		if err := verifyWritePermissions(exePath); err != nil {
			commandStr := "sudo cfnkit " + strings.Join(os.Args[1:], " ")
			return fmt.Errorf("cfnkit is installed at a location that requires sudo privileges\nPlease try - %s", color.GreenString(commandStr))
		}
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(u.currentVersion) {
		slog.Info("✅ installed version is already the latest available", "version", u.currentVersion)
		return nil
	}

	slog.Info("🎉 new version available", "current", u.currentVersion, "latest", latest.Version())

	if u.opts.CheckOnly {
		slog.Info("💡 run without --check-only to update")
		return nil
	}

	if !u.opts.Force && !u.askForConfirmation("🤔 Do you want to update now? (y/N): ") {
		slog.Warn("🚫 update aborted")
		return nil
	}

	slog.Info("🚀 updating", "from", u.currentVersion, "to", latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exePath); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	slog.Info("✅ updated cfnkit", "version", latest.Version())
	return nil
}

// linux and macOS only
func verifyWritePermissions(path string) error {
	dir := filepath.Dir(path)
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("insufficient permissions: directory %s is not writable", dir)
	}
	return nil
}

func (u *Updater) askForConfirmation(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	response, err := bufio.NewReader(u.in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
