package zset

import s "github.com/bnclabs/gosettings"

import "github.com/arpitKSi/REDIS/hashmap"

// Defaultsettings for zset instance, along with the name index.
// Hash table settings are inherited under the "hashmap." prefix,
// refer to hashmap.Defaultsettings for the full list.
func Defaultsettings() s.Settings {
	setts := s.Settings{}
	return setts.Mixin(hashmap.Defaultsettings().AddPrefix("hashmap."))
}
