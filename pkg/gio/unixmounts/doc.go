// Package unixmounts exposes Unix mount points and active mount entries the
// way gio's g_unix_mount_point_* and g_unix_mount_entry_* APIs do.
//
// A MountPoint is a row of the static mount table (/etc/fstab): a place where
// something can be mounted. A MountEntry is a currently mounted filesystem
// (/proc/self/mountinfo). Both are plain values computed fresh on each read;
// the Guess* methods are heuristics, matching the upstream naming.
//
// The tables are parsed natively rather than through the C library; the
// observable behavior (field splitting, octal unescaping, the guess
// heuristics) follows gio.
package unixmounts
