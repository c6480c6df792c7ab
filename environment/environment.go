// This file is part of GopherI2S.
//
// GopherI2S is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherI2S is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherI2S.  If not, see <https://www.gnu.org/licenses/>.

// Package environment provides context for a link. It is passed to the
// hardware constructors and is particularly useful when more than one link
// is running at the same time.
package environment

import (
	"github.com/gopheri2s/gopheri2s/hardware/preferences"
	"github.com/gopheri2s/gopheri2s/random"
)

// Label is used to name the environment.
type Label string

// List of well known labels. The main link has the empty label.
const (
	MainLink   Label = ""
	Comparison Label = "comparison"
	Stepper    Label = "stepper"
)

// Environment is used to provide context for a link.
type Environment struct {
	Label Label

	// any randomisation required by the application should be retreived
	// through this structure
	Random *random.Random

	// the hardware preferences. these can be shared between environments
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// that is never saved to disk will be created. Providing a non-nil value
// allows the preferences of more than one link to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(nil),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run of the
// test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainLink returns true if the environment is intended for the main link
// in the system.
func (env *Environment) IsMainLink() bool {
	return env.Label == MainLink
}

// IsLink checks the environment label and returns true if it matches.
func (env *Environment) IsLink(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// link is allowed to create log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainLink()
}
