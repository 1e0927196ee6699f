//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package builder

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Delay before a rebuild, so that a burst of file events results in one run.
const rebuildDelay = 100 * time.Millisecond

// Watch builds the site and then rebuilds it whenever a source document
// changes. It returns when the done channel is closed.
func (b *Builder) Watch(done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err = watcher.Add(b.cfg.SourceDir); err != nil {
		return err
	}
	if _, err = b.Build(); err != nil {
		return err
	}
	b.log.Info().Str("dir", b.cfg.SourceDir).Msg("Watching for changes")

	for {
		select {
		case <-done:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.log.Warn().Err(err).Msg("Watch error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceEvent(&ev) {
				b.log.Trace().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("event ignored")
				continue
			}
			b.log.Debug().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("file event")
			if !b.drainEvents(watcher, done) {
				return nil
			}
			if _, err = b.Build(); err != nil {
				b.log.Error().Err(err).Msg("Rebuild failed")
			}
		}
	}
}

// drainEvents coalesces the events of one burst. It reports false when the
// done channel was closed.
func (b *Builder) drainEvents(watcher *fsnotify.Watcher, done <-chan struct{}) bool {
	timer := time.NewTimer(rebuildDelay)
	defer timer.Stop()
	for {
		select {
		case <-done:
			return false
		case <-timer.C:
			return true
		case ev, ok := <-watcher.Events:
			if !ok {
				return true
			}
			if isSourceEvent(&ev) {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(rebuildDelay)
			}
		}
	}
}

// isSourceEvent reports whether the event concerns a source document.
func isSourceEvent(ev *fsnotify.Event) bool {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	if ev.Op&relevant == 0 {
		return false
	}
	return syntaxForFile(filepath.Base(ev.Name)) != ""
}
