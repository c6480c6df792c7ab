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

// Package paths contains functions to prepare paths to GopherI2S resources.
//
// The ResourcePath() function returns the path to a resource with the
// appropriate configuration directory prepended. For example, the following
// returns the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() is simple: if the base resource path, defined
// to be ".gopheri2s", is present in the program's current directory then that
// is the base path used. If it is not present then the user's configuration
// directory is used, as reported by os.UserConfigDir(). The directory is
// created if necessary.
//
// On a modern Linux system, the path to the preferences file would be:
//
//	/home/user/.config/gopheri2s/preferences
package paths
