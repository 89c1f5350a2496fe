/*
Copyright (c) 2019 Maxim Konakov
All rights reserved.

Redistribution and use in source and binary forms, with or without modification,
are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.
3. Neither the name of the copyright holder nor the names of its contributors
   may be used to endorse or promote products derived from this software without
   specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS" AND
ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED.
IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT,
INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY
OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING
NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE,
EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/maxim2266/bbhtml/internal/logfields"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	File     string        `arg:"" type:"existingfile" help:"Input file to watch"`
	Output   string        `short:"o" required:"" type:"path" help:"Output file"`
	Debounce time.Duration `default:"200ms" help:"Delay between a change and the conversion"`
}

// Run converts the file once and then after every change, until the context is done.
// Conversion errors are logged and do not stop the watch.
func (w *WatchCmd) Run(e *env) error {
	path, err := filepath.Abs(w.File)

	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()

	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	defer watcher.Close()

	// the directory is watched, editors often replace files instead of writing them
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w.update(e, path)

	fire := make(chan struct{}, 1)
	var timer *time.Timer

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-e.ctx.Done():
			e.log.Info("Stopping watcher", logfields.Path(path))
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			e.log.Debug("Input change detected", logfields.Path(ev.Name), "op", ev.Op.String())

			if timer == nil {
				timer = time.AfterFunc(w.Debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(w.Debounce)
			}

		case <-fire:
			w.update(e, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			e.log.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *WatchCmd) update(e *env, path string) {
	res, err := e.convertFile(path)

	if err == nil {
		err = os.WriteFile(w.Output, res, 0o644)
	}

	if err != nil {
		e.log.Error("Conversion failed", logfields.Path(path), logfields.Error(err))
	}
}
