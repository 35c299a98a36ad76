package hashmap

import s "github.com/bnclabs/gosettings"

// Defaultsettings for hashmap instance.
//
// "minsize" (int64, default: 4),
//      Number of buckets allocated when the active table comes up,
//      must be a power of 2.
//
// "loadfactor" (int64, default: 8),
//      Average entries per bucket in the active table at which the
//      next resize begins.
//
// "migrate" (int64, default: 128),
//      Upper bound on entries relocated out of the retiring table
//      by a single lookup or mutating call.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"minsize":    int64(4),
		"loadfactor": int64(8),
		"migrate":    int64(128),
	}
}
