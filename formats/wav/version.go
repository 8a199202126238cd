// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// VersionInfo identifies the decoder implementation.
type VersionInfo struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Version returns the decoder version.
func Version() VersionInfo {
	return VersionInfo{Major: 0, Minor: 0, Build: 0, Revision: 2}
}
