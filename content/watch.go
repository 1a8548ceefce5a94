package content

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the store whenever its file is written or replaced, until ctx
// ends. The parent directory is watched so editors that save by rename are
// picked up. It returns immediately for the embedded content.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}
	s.logger.Info().Str("path", target).Msg("watching content file")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.logger.Debug().Str("event", event.Op.String()).Msg("content file changed")
			if err := s.Reload(); err != nil {
				s.logger.Error().Err(err).Msg("content reload failed, keeping previous content")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error().Err(err).Msg("content watcher error")
		}
	}
}
