package unixmounts

import (
	"bufio"
	"os"
	"path"
	"strings"
	"time"
)

// fstabPath is a variable so tests can point the package at a fixture.
var fstabPath = "/etc/fstab"

// MountPoint is one row of the static mount table: somewhere a filesystem can
// be mounted, whether or not it currently is.
type MountPoint struct {
	MountPath  string
	DevicePath string
	FSType     string
	Options    string
}

// Points reads the static mount table. Swap and placeholder rows are skipped,
// matching g_unix_mount_points_get.
func Points() ([]*MountPoint, error) {
	f, err := os.Open(fstabPath)
	if err != nil {
		return nil, errorf("Points", "reading mount table: %w", err)
	}
	defer f.Close()

	var points []*MountPoint
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if p := parsePointLine(sc.Text()); p != nil {
			points = append(points, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errorf("Points", "reading mount table: %w", err)
	}
	return points, nil
}

// At returns the mount point configured for mountPath, plus the time the
// table was read (its modification time, the closest analogue of
// g_unix_mount_point_at's time_read).
func At(mountPath string) (*MountPoint, time.Time, error) {
	points, err := Points()
	if err != nil {
		return nil, time.Time{}, err
	}
	var read time.Time
	if fi, err := os.Stat(fstabPath); err == nil {
		read = fi.ModTime()
	}
	for _, p := range points {
		if p.MountPath == mountPath {
			return p, read, nil
		}
	}
	return nil, read, &Error{Op: "At", Err: ErrNotFound}
}

func parsePointLine(line string) *MountPoint {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil
	}
	fstype := fields[2]
	if fstype == "swap" || fstype == "ignore" {
		return nil
	}
	mount := unescapeOctal(fields[1])
	if mount == "" || mount == "none" {
		return nil
	}
	p := &MountPoint{
		DevicePath: unescapeOctal(fields[0]),
		MountPath:  mount,
		FSType:     fstype,
	}
	if len(fields) > 3 {
		p.Options = fields[3]
	}
	return p
}

// hasOption reports whether word appears in a comma-separated option list.
func hasOption(options, word string) bool {
	for _, opt := range strings.Split(options, ",") {
		if opt == word {
			return true
		}
	}
	return false
}

// IsReadOnly reports whether the mount point is configured read-only.
func (p *MountPoint) IsReadOnly() bool {
	return hasOption(p.Options, "ro")
}

// IsUserMountable reports whether an unprivileged user may mount this entry.
func (p *MountPoint) IsUserMountable() bool {
	for _, word := range []string{"user", "users", "owner", "pamconsole"} {
		if hasOption(p.Options, word) {
			return true
		}
	}
	return false
}

// IsLoopback reports whether the mount point uses a loopback device.
func (p *MountPoint) IsLoopback() bool {
	return strings.HasPrefix(p.DevicePath, "/dev/loop")
}

// GuessCanEject guesses from the filesystem type whether the media behind
// this mount point is ejectable.
func (p *MountPoint) GuessCanEject() bool {
	return p.FSType == "iso9660" || p.FSType == "udf"
}

// GuessName guesses a human-readable name: the last component of the mount
// path, or the path itself for the filesystem root.
func (p *MountPoint) GuessName() string {
	if p.MountPath == "/" {
		return "/"
	}
	return path.Base(p.MountPath)
}

// Compare orders mount points by mount path, then device path, then
// filesystem type, mirroring g_unix_mount_point_compare.
func (p *MountPoint) Compare(other *MountPoint) int {
	if c := strings.Compare(p.MountPath, other.MountPath); c != 0 {
		return c
	}
	if c := strings.Compare(p.DevicePath, other.DevicePath); c != 0 {
		return c
	}
	return strings.Compare(p.FSType, other.FSType)
}

// Equal reports whether two mount points describe the same row.
func (p *MountPoint) Equal(other *MountPoint) bool {
	return p.Compare(other) == 0
}

// unescapeOctal decodes the \ooo escapes mount tables use for whitespace in
// paths (for example \040 for space).
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) && isOctal(s[i+1]) && isOctal(s[i+2]) && isOctal(s[i+3]) {
			b.WriteByte((s[i+1]-'0')<<6 | (s[i+2]-'0')<<3 | (s[i+3] - '0'))
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }
