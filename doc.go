/*
Copyright © 2021 the climlab authors.
This file is part of climlab.

climlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

climlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with climlab.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package climlab holds column climate model components.
// The radiative transfer scheme lives in the radiation subpackage;
// command-line drivers live under cmd.
package climlab
