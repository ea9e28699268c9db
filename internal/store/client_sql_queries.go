// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	readCacheEntry = `
		SELECT value, dirty, deleted, last_synced_at, updated_at
		FROM cache_entries
		WHERE cache_key = ?;`

	writeCacheEntry = `
		INSERT INTO cache_entries (cache_key, value, dirty, deleted, last_synced_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (cache_key) DO UPDATE SET
			value = excluded.value,
			dirty = excluded.dirty,
			deleted = excluded.deleted,
			last_synced_at = excluded.last_synced_at,
			updated_at = excluded.updated_at;`

	clearCacheEntry = `DELETE FROM cache_entries WHERE cache_key = ?;`

	listCacheKeys = `
		SELECT cache_key
		FROM cache_entries
		WHERE substr(cache_key, 1, length(?)) = ?
		ORDER BY cache_key;`

	loadSession = `SELECT login, token, saved_at FROM session WHERE id = 1;`

	saveSession = `
		INSERT INTO session (id, login, token, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			login = excluded.login,
			token = excluded.token,
			saved_at = excluded.saved_at;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)
