/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmp

import "github.com/rs/zerolog"

// ZerologAdapter wraps a zerolog.Logger so it satisfies Logger. Callers that
// already carry a zerolog.Logger (as most services in this stack do) can
// wire it straight into a Config without writing their own shim.
type ZerologAdapter struct {
	Log zerolog.Logger
}

// NewZerologAdapter wraps log as a Logger.
func NewZerologAdapter(log zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{Log: log}
}

// Warnf implements Logger.
func (a *ZerologAdapter) Warnf(format string, args ...any) {
	a.Log.Warn().Msgf(format, args...)
}

// Errorf implements Logger.
func (a *ZerologAdapter) Errorf(format string, args ...any) {
	a.Log.Error().Msgf(format, args...)
}

func warnf(log Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Warnf(format, args...)
}

func errorf(log Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Errorf(format, args...)
}
