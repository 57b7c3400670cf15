package unixmounts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const fstabFixture = `# /etc/fstab: static file system information.
UUID=abcd-1234 /          ext4  errors=remount-ro 0 1
/dev/sda2      /boot      vfat  ro,user          0 2
/dev/loop3     /mnt/image iso9660 ro,loop        0 0
/dev/sdb1      none       swap  sw               0 0
/dev/cdrom     /media/My\040Disc iso9660 user,noauto 0 0
`

func withFstab(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fstab")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	old := fstabPath
	fstabPath = path
	t.Cleanup(func() { fstabPath = old })
}

func TestPoints(t *testing.T) {
	withFstab(t, fstabFixture)

	points, err := Points()
	require.NoError(t, err)

	want := []*MountPoint{
		{DevicePath: "UUID=abcd-1234", MountPath: "/", FSType: "ext4", Options: "errors=remount-ro"},
		{DevicePath: "/dev/sda2", MountPath: "/boot", FSType: "vfat", Options: "ro,user"},
		{DevicePath: "/dev/loop3", MountPath: "/mnt/image", FSType: "iso9660", Options: "ro,loop"},
		{DevicePath: "/dev/cdrom", MountPath: "/media/My Disc", FSType: "iso9660", Options: "user,noauto"},
	}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestAt(t *testing.T) {
	withFstab(t, fstabFixture)

	p, read, err := At("/boot")
	require.NoError(t, err)
	require.Equal(t, "/dev/sda2", p.DevicePath)
	require.False(t, read.IsZero())

	_, _, err = At("/nonexistent")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPointPredicates(t *testing.T) {
	withFstab(t, fstabFixture)
	points, err := Points()
	require.NoError(t, err)

	byPath := make(map[string]*MountPoint, len(points))
	for _, p := range points {
		byPath[p.MountPath] = p
	}

	root := byPath["/"]
	require.False(t, root.IsReadOnly())
	require.False(t, root.IsUserMountable())
	require.Equal(t, "/", root.GuessName())

	boot := byPath["/boot"]
	require.True(t, boot.IsReadOnly())
	require.True(t, boot.IsUserMountable())
	require.False(t, boot.GuessCanEject())
	require.Equal(t, "boot", boot.GuessName())

	image := byPath["/mnt/image"]
	require.True(t, image.IsLoopback())
	require.True(t, image.GuessCanEject())

	disc := byPath["/media/My Disc"]
	require.Equal(t, "My Disc", disc.GuessName())
	require.True(t, disc.IsUserMountable())
}

func TestCompare(t *testing.T) {
	a := &MountPoint{MountPath: "/a", DevicePath: "/dev/sda1", FSType: "ext4"}
	b := &MountPoint{MountPath: "/b", DevicePath: "/dev/sda1", FSType: "ext4"}
	require.Less(t, a.Compare(b), 0)
	require.Greater(t, b.Compare(a), 0)
	require.True(t, a.Equal(&MountPoint{MountPath: "/a", DevicePath: "/dev/sda1", FSType: "ext4"}))
}

func TestUnescapeOctal(t *testing.T) {
	cases := map[string]string{
		`/plain`:           "/plain",
		`/with\040space`:   "/with space",
		`/tab\011here`:     "/tab\there",
		`/trailing\04`:     `/trailing\04`, // incomplete escape kept verbatim
		`/back\134slash`:   `/back\slash`,
		`/two\040\040gaps`: "/two  gaps",
	}
	for in, want := range cases {
		if got := unescapeOctal(in); got != want {
			t.Errorf("unescapeOctal(%q) = %q, want %q", in, got, want)
		}
	}
}

const mountinfoFixture = `36 35 98:0 / / rw,relatime shared:1 - ext4 /dev/sda1 rw,errors=remount-ro
37 36 0:19 / /proc rw,nosuid,nodev,noexec shared:2 - proc proc rw
38 36 7:3 / /mnt/backup ro,relatime shared:3 - ext4 /dev/loop3 ro
39 36 98:2 /data /srv/data rw,relatime master:1 shared:4 - xfs /dev/sdb1 rw,noquota
`

func withMountinfo(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mountinfo")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	old := mountinfoPath
	mountinfoPath = path
	t.Cleanup(func() { mountinfoPath = old })
}

func TestEntries(t *testing.T) {
	withMountinfo(t, mountinfoFixture)

	entries, err := Entries()
	require.NoError(t, err)
	require.Len(t, entries, 4)

	want := &MountEntry{
		Root:         "/data",
		MountPath:    "/srv/data",
		Options:      "rw,relatime",
		FSType:       "xfs",
		DevicePath:   "/dev/sdb1",
		SuperOptions: "rw,noquota",
	}
	if diff := cmp.Diff(want, entries[3]); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}

	require.True(t, entries[1].IsSystemInternal())
	require.False(t, entries[0].IsSystemInternal())
	require.True(t, entries[2].IsReadOnly())
	require.Equal(t, "backup", entries[2].GuessName())
}

func TestEntryAt(t *testing.T) {
	withMountinfo(t, mountinfoFixture)

	e, err := EntryAt("/mnt/backup")
	require.NoError(t, err)
	require.Equal(t, "ext4", e.FSType)

	_, err = EntryAt("/missing")
	require.ErrorIs(t, err, ErrNotFound)

	var uerr *Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, "EntryAt", uerr.Op)
}

func TestParseEntryLineMalformed(t *testing.T) {
	if _, err := parseEntryLine("36 35 98:0 / /x rw shared:1 ext4"); err == nil {
		t.Fatal("line without separator accepted")
	}
	if e, err := parseEntryLine("   "); err != nil || e != nil {
		t.Fatalf("blank line: entry=%v err=%v", e, err)
	}
}
