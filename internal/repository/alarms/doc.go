// Package alarms implements durable storage for scheduled alarms.
//
// The Store keeps one record per alarm, named by the lowercase hexadecimal
// alarm id, and a summary entry listing every live id. The summary is the
// recovery seed on restart: ids whose record is missing, corrupt or whose bulb
// alias no longer resolves are pruned by the scheduler while reloading.
//
// Raw bytes go through a Backend. FileBackend stores entries as files on an
// afero filesystem; SQLiteBackend stores them as rows in a SQLite database.
package alarms
