package schema

// v2/v3 unified-file generation. 2.18.0 is fully grounded on
// schema_2_18_0.cpp. Later variants are built by cloning the nearest
// grounded predecessor and applying the deltas schema.cpp's own
// override lists document: schema_2_20_3.cpp demotes ChangeLog to a
// trivial view, schema_2_21_0.hpp adds a verify_smartlist override
// (Smartlist enters the lineage here, not at 3.x), and
// schema_3_0_0.hpp overrides verify_track/verify_performance_data to
// move performance blobs off Track and onto a real PerformanceData
// table — "despite having a new major version number, DB schema 3.x
// is sufficiently similar to 2.x to be modelled as an evolution of it"
// (schema_3_0_0.hpp's own comment). schema_3_1_0.cpp is fully grounded
// and contributes the final lastEditTime/activeOnLoadLoops/
// lastPackTime additions.

func trackColumnsV2() []Column {
	return []Column{
		colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"), col("bpm", "INTEGER"),
		col("year", "INTEGER"), col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
		col("bpmAnalyzed", "REAL"), col("albumArtId", "INTEGER"), col("fileBytes", "INTEGER"), col("title", "TEXT"),
		col("artist", "TEXT"), col("album", "TEXT"), col("genre", "TEXT"), col("comment", "TEXT"), col("label", "TEXT"),
		col("composer", "TEXT"), col("remixer", "TEXT"), col("key", "INTEGER"), col("rating", "INTEGER"), col("albumArt", "TEXT"),
		col("timeLastPlayed", "DATETIME"), col("isPlayed", "BOOLEAN"), col("fileType", "TEXT"), col("isAnalyzed", "BOOLEAN"),
		col("dateCreated", "DATETIME"), col("dateAdded", "DATETIME"), col("isAvailable", "BOOLEAN"),
		col("isMetadataOfPackedTrackChanged", "BOOLEAN"), col("isPerfomanceDataOfPackedTrackChanged", "BOOLEAN"),
		col("playedIndicator", "INTEGER"), col("isMetadataImported", "BOOLEAN"), col("pdbImportKey", "INTEGER"),
		col("streamingSource", "TEXT"), col("uri", "TEXT"), col("isBeatGridLocked", "BOOLEAN"),
		col("originDatabaseUuid", "TEXT"), col("originTrackId", "INTEGER"), col("trackData", "BLOB"),
		col("overviewWaveFormData", "BLOB"), col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"),
		col("thirdPartySourceId", "INTEGER"), col("streamingFlags", "INTEGER"), col("explicitLyrics", "BOOLEAN"),
	}
}

func trackDDLV2() string {
	return `CREATE TABLE Track ( id INTEGER PRIMARY KEY AUTOINCREMENT, playOrder INTEGER, length INTEGER, bpm INTEGER, year INTEGER, path TEXT, filename TEXT, bitrate INTEGER, bpmAnalyzed REAL, albumArtId INTEGER, fileBytes INTEGER, title TEXT, artist TEXT, album TEXT, genre TEXT, comment TEXT, label TEXT, composer TEXT, remixer TEXT, key INTEGER, rating INTEGER, albumArt TEXT, timeLastPlayed DATETIME, isPlayed BOOLEAN, fileType TEXT, isAnalyzed BOOLEAN, dateCreated DATETIME, dateAdded DATETIME, isAvailable BOOLEAN, isMetadataOfPackedTrackChanged BOOLEAN, isPerfomanceDataOfPackedTrackChanged BOOLEAN, playedIndicator INTEGER, isMetadataImported BOOLEAN, pdbImportKey INTEGER, streamingSource TEXT, uri TEXT, isBeatGridLocked BOOLEAN, originDatabaseUuid TEXT, originTrackId INTEGER, trackData BLOB, overviewWaveFormData BLOB, beatData BLOB, quickCues BLOB, loops BLOB, thirdPartySourceId INTEGER, streamingFlags INTEGER, explicitLyrics BOOLEAN, CONSTRAINT C_originDatabaseUuid_originTrackId UNIQUE (originDatabaseUuid, originTrackId), CONSTRAINT C_path UNIQUE (path), FOREIGN KEY (albumArtId) REFERENCES AlbumArt (id) ON DELETE RESTRICT )`
}

func tablesV2_18_0() []Table {
	return []Table{
		table("", "Information",
			`CREATE TABLE Information ( id INTEGER PRIMARY KEY AUTOINCREMENT, uuid TEXT, schemaVersionMajor INTEGER, schemaVersionMinor INTEGER, schemaVersionPatch INTEGER, currentPlayedIndiciator INTEGER, lastRekordBoxLibraryImportReadCounter INTEGER)`,
			[]Column{colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"), col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"), col("currentPlayedIndiciator", "INTEGER"), col("lastRekordBoxLibraryImportReadCounter", "INTEGER")}),

		table("", "Track", trackDDLV2(), trackColumnsV2(),
			idx("index_Track_filename", false, "filename"), idx("index_Track_albumArtId", false, "albumArtId"), idx("index_Track_uri", false, "uri")),

		table("", "ChangeLog",
			`CREATE TABLE ChangeLog ( id INTEGER PRIMARY KEY AUTOINCREMENT, trackId INTEGER, FOREIGN KEY (trackId) REFERENCES Track (id) ON DELETE SET NULL )`,
			[]Column{colPK("id", "INTEGER", 1), col("trackId", "INTEGER")}),

		table("", "AlbumArt",
			`CREATE TABLE AlbumArt ( id INTEGER PRIMARY KEY AUTOINCREMENT, hash TEXT, albumArt BLOB )`,
			[]Column{colPK("id", "INTEGER", 1), col("hash", "TEXT"), col("albumArt", "BLOB")},
			idx("index_AlbumArt_hash", false, "hash")),

		table("", "Pack",
			`CREATE TABLE Pack ( id INTEGER PRIMARY KEY AUTOINCREMENT, packId TEXT, changeLogDatabaseUuid TEXT, changeLogId INTEGER )`,
			[]Column{colPK("id", "INTEGER", 1), col("packId", "TEXT"), col("changeLogDatabaseUuid", "TEXT"), col("changeLogId", "INTEGER")}),

		table("", "Playlist",
			`CREATE TABLE Playlist ( id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT, parentListId INTEGER, isPersisted BOOLEAN, nextListId INTEGER, lastEditTime DATETIME, isExplicitlyExported BOOLEAN, CONSTRAINT C_NAME_UNIQUE_FOR_PARENT UNIQUE (title, parentListId), CONSTRAINT C_NEXT_LIST_ID_UNIQUE_FOR_PARENT UNIQUE (parentListId, nextListId) )`,
			[]Column{colPK("id", "INTEGER", 1), col("title", "TEXT"), col("parentListId", "INTEGER"), col("isPersisted", "BOOLEAN"), col("nextListId", "INTEGER"), col("lastEditTime", "DATETIME"), col("isExplicitlyExported", "BOOLEAN")}),

		table("", "PlaylistEntity",
			`CREATE TABLE PlaylistEntity ( id INTEGER PRIMARY KEY AUTOINCREMENT, listId INTEGER, trackId INTEGER, databaseUuid TEXT, nextEntityId INTEGER, membershipReference INTEGER, CONSTRAINT C_NAME_UNIQUE_FOR_LIST UNIQUE (listId, databaseUuid, trackId), FOREIGN KEY (listId) REFERENCES Playlist (id) ON DELETE CASCADE )`,
			[]Column{colPK("id", "INTEGER", 1), col("listId", "INTEGER"), col("trackId", "INTEGER"), col("databaseUuid", "TEXT"), col("nextEntityId", "INTEGER"), col("membershipReference", "INTEGER")}),

		table("", "PreparelistEntity",
			`CREATE TABLE PreparelistEntity ( id INTEGER PRIMARY KEY AUTOINCREMENT, trackId INTEGER, trackNumber INTEGER, FOREIGN KEY (trackId) REFERENCES Track (id) ON DELETE CASCADE )`,
			[]Column{colPK("id", "INTEGER", 1), col("trackId", "INTEGER"), col("trackNumber", "INTEGER")},
			idx("index_PreparelistEntity_trackId", false, "trackId")),

		view("", "PlaylistPath", playlistPathViewDDL(), []Column{col("id", ""), col("path", ""), col("position", "")}),
		view("", "PlaylistAllParent", playlistAllParentViewDDL(), []Column{col("id", ""), col("parentListId", "")}),
		view("", "PlaylistAllChildren", playlistAllChildrenViewDDL(), []Column{col("id", ""), col("childListId", "")}),

		view("", "PerformanceData",
			`CREATE VIEW PerformanceData AS SELECT id AS trackId, isAnalyzed, trackData, overviewWaveFormData, beatData, quickCues, loops, thirdPartySourceId FROM Track`,
			[]Column{col("trackId", ""), col("isAnalyzed", ""), col("trackData", ""), col("overviewWaveFormData", ""), col("beatData", ""), col("quickCues", ""), col("loops", ""), col("thirdPartySourceId", "")}),
	}
}

func playlistPathViewDDL() string {
	return `CREATE VIEW PlaylistPath AS WITH RECURSIVE Heirarchy AS ( SELECT id AS child, parentListId AS parent, title AS name, 1 AS depth FROM Playlist UNION ALL SELECT child, parentListId AS parent, title AS name, h.depth + 1 AS depth FROM Playlist c JOIN Heirarchy h ON h.parent = c.id ORDER BY depth DESC ), OrderedList AS ( SELECT id, nextListId, 1 AS position FROM Playlist WHERE nextListId = 0 UNION ALL SELECT c.id, c.nextListId, l.position + 1 FROM Playlist c INNER JOIN OrderedList l ON c.nextListId = l.id ), NameConcat AS ( SELECT child AS id, GROUP_CONCAT(name, ';') || ';' AS path FROM (SELECT child, name FROM Heirarchy ORDER BY depth DESC) GROUP BY child ) SELECT id, path, ROW_NUMBER() OVER (ORDER BY (SELECT COUNT(*) FROM (SELECT * FROM Heirarchy WHERE child = id)) DESC, (SELECT position FROM OrderedList ol WHERE ol.id = c.id) ASC) AS position FROM Playlist c LEFT JOIN NameConcat g USING (id)`
}

func playlistAllParentViewDDL() string {
	return `CREATE VIEW PlaylistAllParent AS WITH FindAllParent AS ( SELECT id, parentListId FROM Playlist UNION ALL SELECT recursiveCTE.id, Plist.parentListId FROM Playlist Plist INNER JOIN FindAllParent recursiveCTE ON recursiveCTE.parentListId = Plist.id ) SELECT * FROM FindAllParent`
}

func playlistAllChildrenViewDDL() string {
	return `CREATE VIEW PlaylistAllChildren AS WITH FindAllChild AS ( SELECT id, id as childListId FROM Playlist UNION ALL SELECT recursiveCTE.id, Plist.id FROM Playlist Plist INNER JOIN FindAllChild recursiveCTE ON recursiveCTE.childListId = Plist.parentListId ) SELECT * FROM FindAllChild WHERE id <> childListId`
}

// listTriggerDDLV2 is the shared set of List (Playlist) maintenance
// triggers every 2.x/3.x variant emits verbatim: Track id non-reuse,
// origin UUID backfill, the two-phase nextListId pointer rewrite on
// insert/delete, and isPersisted propagation. Grounded on
// schema_2_18_0.cpp lines 505-549 and mirrored unchanged in
// schema_3_1_0.cpp lines 96-122.
func listTriggerDDLV2() []string {
	return []string{
		`CREATE TRIGGER trigger_after_insert_Track_check_id AFTER INSERT ON Track WHEN NEW.id <= (SELECT seq FROM sqlite_sequence WHERE name = 'Track') BEGIN SELECT RAISE(ABORT, 'Recycling deleted track ids are not allowed'); END`,
		`CREATE TRIGGER trigger_after_update_Track_check_Id BEFORE UPDATE ON Track WHEN NEW.id <> OLD.id BEGIN SELECT RAISE(ABORT, 'Changing track ids are not allowed'); END`,
		`CREATE TRIGGER trigger_after_insert_Track_fix_origin AFTER INSERT ON Track WHEN IFNULL(NEW.originTrackId, 0) = 0 OR IFNULL(NEW.originDatabaseUuid, '') = '' BEGIN UPDATE Track SET originTrackId = NEW.id, originDatabaseUuid = (SELECT uuid FROM Information) WHERE Track.id = NEW.id; END`,
		`CREATE TRIGGER trigger_after_update_Track_fix_origin AFTER UPDATE ON Track WHEN IFNULL(NEW.originTrackId, 0) = 0 OR IFNULL(NEW.originDatabaseUuid, '') = '' BEGIN UPDATE Track SET originTrackId = NEW.id, originDatabaseUuid = (SELECT uuid FROM Information) WHERE Track.id = NEW.id; END`,
		`CREATE TRIGGER trigger_before_insert_List BEFORE INSERT ON Playlist FOR EACH ROW BEGIN UPDATE Playlist SET nextListId = -(1 + nextListId) WHERE nextListId = NEW.nextListId AND parentListId = NEW.parentListId; END`,
		`CREATE TRIGGER trigger_after_insert_List AFTER INSERT ON Playlist FOR EACH ROW BEGIN UPDATE Playlist SET nextListId = NEW.id WHERE nextListId = -(1 + NEW.nextListId) AND parentListId = NEW.parentListId; END`,
		`CREATE TRIGGER trigger_after_delete_List AFTER DELETE ON Playlist FOR EACH ROW BEGIN UPDATE Playlist SET nextListId = OLD.nextListId WHERE nextListId = OLD.id; DELETE FROM Playlist WHERE parentListId = OLD.id; END`,
		`CREATE TRIGGER trigger_after_update_isPersistParent AFTER UPDATE ON Playlist WHEN (old.isPersisted = 0 AND new.isPersisted = 1) OR (old.parentListId != new.parentListId AND new.isPersisted = 1) BEGIN UPDATE Playlist SET isPersisted = 1 WHERE id IN (SELECT parentListId FROM PlaylistAllParent WHERE id=new.id); END`,
		`CREATE TRIGGER trigger_after_update_isPersistChild AFTER UPDATE ON Playlist WHEN old.isPersisted = 1 AND new.isPersisted = 0 BEGIN UPDATE Playlist SET isPersisted = 0 WHERE id IN (SELECT childListId FROM PlaylistAllChildren WHERE id=new.id); END`,
		`CREATE TRIGGER trigger_after_insert_isPersist AFTER INSERT ON Playlist WHEN new.isPersisted = 1 BEGIN UPDATE Playlist SET isPersisted = 1 WHERE id IN (SELECT parentListId FROM PlaylistAllParent WHERE id=new.id); END`,
		`CREATE TRIGGER trigger_before_delete_PlaylistEntity BEFORE DELETE ON PlaylistEntity WHEN OLD.trackId > 0 BEGIN UPDATE PlaylistEntity SET nextEntityId = OLD.nextEntityId WHERE nextEntityId = OLD.id AND listId = OLD.listId; END`,
	}
}

// changeLogTriggerDDL records every Track update in ChangeLog. newV2
// emits it only for variants where ChangeLog is a real table.
func changeLogTriggerDDL() string {
	return `CREATE TRIGGER trigger_after_update_Track AFTER UPDATE ON Track FOR EACH ROW BEGIN INSERT INTO ChangeLog (trackId) VALUES(NEW.id); END`
}

// performanceDataViewTriggerDDL is 2.x's view-backed PerformanceData:
// all writes route onto Track's own columns, and DELETE nulls them out
// rather than removing the Track row (spec.md invariant on 2.x
// performance data clearing). Grounded verbatim on schema_2_18_0.cpp
// lines 584-624.
func performanceDataViewTriggerDDL() []string {
	return []string{
		`CREATE TRIGGER trigger_instead_insert_PerformanceData INSTEAD OF INSERT ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET isAnalyzed = NEW.isAnalyzed, trackData = NEW.trackData, overviewWaveFormData = NEW.overviewWaveFormData, beatData = NEW.beatData, quickCues = NEW.quickCues, loops = NEW.loops, thirdPartySourceId = NEW.thirdPartySourceId WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_isAnalyzed_PerformanceData INSTEAD OF UPDATE OF isAnalyzed ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET isAnalyzed = NEW.isAnalyzed WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_trackData_PerformanceData INSTEAD OF UPDATE OF trackData ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET trackData = NEW.trackData WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_overviewWaveFormData_PerformanceData INSTEAD OF UPDATE OF overviewWaveFormData ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET overviewWaveFormData = NEW.overviewWaveFormData WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_beatData_PerformanceData INSTEAD OF UPDATE OF beatData ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET beatData = NEW.beatData WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_quickCues_PerformanceData INSTEAD OF UPDATE OF quickCues ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET quickCues = NEW.quickCues WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_loops_PerformanceData INSTEAD OF UPDATE OF loops ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET loops = NEW.loops WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_update_thirdPartySourceId_PerformanceData INSTEAD OF UPDATE OF thirdPartySourceId ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET thirdPartySourceId = NEW.thirdPartySourceId WHERE Track.id = NEW.trackId; END`,
		`CREATE TRIGGER trigger_instead_delete_PerformanceData INSTEAD OF DELETE ON PerformanceData FOR EACH ROW BEGIN UPDATE Track SET isAnalyzed = NULL, trackData = NULL, overviewWaveFormData = NULL, beatData = NULL, quickCues = NULL, loops = NULL, thirdPartySourceId = NULL WHERE Track.id = OLD.trackId; END`,
	}
}

// tablesV2_20_3 demotes ChangeLog from a real table to the trivial
// always-empty view the Schema Detector treats as a 2.20.3+ signal
// (schema_2_20_3.cpp:29,464 — "Schema 2.20.3 removes the ChangeLog
// table and replaces it with a 'fake' … view").
func tablesV2_20_3() []Table {
	t := tablesV2_18_0()
	t = replace(t, view("", "ChangeLog", `CREATE VIEW ChangeLog (id, trackId) AS SELECT 0, 0 WHERE FALSE`,
		[]Column{col("id", ""), col("trackId", "")}))
	return t
}

func smartlistTable() Table {
	return table("", "Smartlist",
		`CREATE TABLE Smartlist ( listUuid TEXT NOT NULL PRIMARY KEY, title TEXT, parentPlaylistPath TEXT, nextPlaylistPath TEXT, nextListUuid TEXT, rules TEXT, lastEditTime DATETIME, CONSTRAINT C_NAME_UNIQUE_FOR_PARENT UNIQUE (title, parentPlaylistPath), CONSTRAINT C_NEXT_LIST_UNIQUE_FOR_PARENT UNIQUE (parentPlaylistPath, nextPlaylistPath, nextListUuid) )`,
		[]Column{colPK("listUuid", "TEXT", 1), col("title", "TEXT"), col("parentPlaylistPath", "TEXT"), col("nextPlaylistPath", "TEXT"), col("nextListUuid", "TEXT"), col("rules", "TEXT"), col("lastEditTime", "DATETIME")})
}

// tablesV2_21_0 adds Smartlist — schema_2_21_0.hpp overrides
// verify_master_list and introduces a verify_smartlist method, placing
// Smartlist's introduction here rather than at the 3.x boundary.
func tablesV2_21_0() []Table {
	return append(tablesV2_20_3(), smartlistTable())
}

func tablesV2_21_1() []Table { return tablesV2_21_0() }
func tablesV2_21_2() []Table { return tablesV2_21_1() }

// tablesV3_0_0 is where schema_3_0_0.hpp's overridden verify_track and
// new verify_performance_data move the five performance blob columns
// off Track and onto a real, cascade-deleted PerformanceData table,
// replacing the 2.x view+INSTEAD-OF-trigger emulation.
func tablesV3_0_0() []Table {
	t := cloneTables(tablesV2_21_2())
	t = remove(t, "", "PerformanceData")

	trackCols := []Column{
		colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"), col("bpm", "INTEGER"),
		col("year", "INTEGER"), col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
		col("bpmAnalyzed", "REAL"), col("albumArtId", "INTEGER"), col("fileBytes", "INTEGER"), col("title", "TEXT"),
		col("artist", "TEXT"), col("album", "TEXT"), col("genre", "TEXT"), col("comment", "TEXT"), col("label", "TEXT"),
		col("composer", "TEXT"), col("remixer", "TEXT"), col("key", "INTEGER"), col("rating", "INTEGER"), col("albumArt", "TEXT"),
		col("timeLastPlayed", "DATETIME"), col("isPlayed", "BOOLEAN"), col("fileType", "TEXT"), col("isAnalyzed", "BOOLEAN"),
		col("dateCreated", "DATETIME"), col("dateAdded", "DATETIME"), col("isAvailable", "BOOLEAN"),
		col("isMetadataOfPackedTrackChanged", "BOOLEAN"), col("isPerfomanceDataOfPackedTrackChanged", "BOOLEAN"),
		col("playedIndicator", "INTEGER"), col("isMetadataImported", "BOOLEAN"), col("pdbImportKey", "INTEGER"),
		col("streamingSource", "TEXT"), col("uri", "TEXT"), col("isBeatGridLocked", "BOOLEAN"),
		col("originDatabaseUuid", "TEXT"), col("originTrackId", "INTEGER"),
		col("thirdPartySourceId", "INTEGER"), col("streamingFlags", "INTEGER"), col("explicitLyrics", "BOOLEAN"),
	}
	trackDDL := `CREATE TABLE Track ( id INTEGER PRIMARY KEY AUTOINCREMENT, playOrder INTEGER, length INTEGER, bpm INTEGER, year INTEGER, path TEXT, filename TEXT, bitrate INTEGER, bpmAnalyzed REAL, albumArtId INTEGER, fileBytes INTEGER, title TEXT, artist TEXT, album TEXT, genre TEXT, comment TEXT, label TEXT, composer TEXT, remixer TEXT, key INTEGER, rating INTEGER, albumArt TEXT, timeLastPlayed DATETIME, isPlayed BOOLEAN, fileType TEXT, isAnalyzed BOOLEAN, dateCreated DATETIME, dateAdded DATETIME, isAvailable BOOLEAN, isMetadataOfPackedTrackChanged BOOLEAN, isPerfomanceDataOfPackedTrackChanged BOOLEAN, playedIndicator INTEGER, isMetadataImported BOOLEAN, pdbImportKey INTEGER, streamingSource TEXT, uri TEXT, isBeatGridLocked BOOLEAN, originDatabaseUuid TEXT, originTrackId INTEGER, thirdPartySourceId INTEGER, streamingFlags INTEGER, explicitLyrics BOOLEAN, CONSTRAINT C_originDatabaseUuid_originTrackId UNIQUE (originDatabaseUuid, originTrackId), CONSTRAINT C_path UNIQUE (path), FOREIGN KEY (albumArtId) REFERENCES AlbumArt (id) ON DELETE RESTRICT )`
	t = replace(t, table("", "Track", trackDDL, trackCols,
		idx("index_Track_filename", false, "filename"), idx("index_Track_albumArtId", false, "albumArtId"), idx("index_Track_uri", false, "uri")))

	t = append(t, table("", "PerformanceData",
		`CREATE TABLE PerformanceData ( trackId INTEGER PRIMARY KEY, trackData BLOB, overviewWaveFormData BLOB, beatData BLOB, quickCues BLOB, loops BLOB, thirdPartySourceId INTEGER, FOREIGN KEY(trackId) REFERENCES Track(id) ON DELETE CASCADE ON UPDATE CASCADE )`,
		[]Column{colPK("trackId", "INTEGER", 1), col("trackData", "BLOB"), col("overviewWaveFormData", "BLOB"), col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"), col("thirdPartySourceId", "INTEGER")}))
	return t
}

func tablesV3_0_1() []Table { return tablesV3_0_0() }

// tablesV3_1_0 is fully grounded on schema_3_1_0.cpp: Track gains
// lastEditTime, PerformanceData gains activeOnLoadLoops, Pack gains
// lastPackTime (auto-populated by trigger_after_insert_Pack_timestamp/
// ..._changeLogId), and Smartlist/ChangeLog/Playlist/PlaylistEntity
// are carried over unchanged from the 2.21.x lineage.
func tablesV3_1_0() []Table {
	t := cloneTables(tablesV3_0_1())

	trackCols := []Column{
		colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"), col("bpm", "INTEGER"),
		col("year", "INTEGER"), col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
		col("bpmAnalyzed", "REAL"), col("albumArtId", "INTEGER"), col("fileBytes", "INTEGER"), col("title", "TEXT"),
		col("artist", "TEXT"), col("album", "TEXT"), col("genre", "TEXT"), col("comment", "TEXT"), col("label", "TEXT"),
		col("composer", "TEXT"), col("remixer", "TEXT"), col("key", "INTEGER"), col("rating", "INTEGER"), col("albumArt", "TEXT"),
		col("timeLastPlayed", "DATETIME"), col("isPlayed", "BOOLEAN"), col("fileType", "TEXT"), col("isAnalyzed", "BOOLEAN"),
		col("dateCreated", "DATETIME"), col("dateAdded", "DATETIME"), col("isAvailable", "BOOLEAN"),
		col("isMetadataOfPackedTrackChanged", "BOOLEAN"), col("isPerfomanceDataOfPackedTrackChanged", "BOOLEAN"),
		col("playedIndicator", "INTEGER"), col("isMetadataImported", "BOOLEAN"), col("pdbImportKey", "INTEGER"),
		col("streamingSource", "TEXT"), col("uri", "TEXT"), col("isBeatGridLocked", "BOOLEAN"),
		col("originDatabaseUuid", "TEXT"), col("originTrackId", "INTEGER"),
		col("streamingFlags", "INTEGER"), col("explicitLyrics", "BOOLEAN"), col("lastEditTime", "DATETIME"),
	}
	t = replace(t, table("", "Track",
		`CREATE TABLE Track ( id INTEGER PRIMARY KEY AUTOINCREMENT, playOrder INTEGER, length INTEGER, bpm INTEGER, year INTEGER, path TEXT, filename TEXT, bitrate INTEGER, bpmAnalyzed REAL, albumArtId INTEGER, fileBytes INTEGER, title TEXT, artist TEXT, album TEXT, genre TEXT, comment TEXT, label TEXT, composer TEXT, remixer TEXT, key INTEGER, rating INTEGER, albumArt TEXT, timeLastPlayed DATETIME, isPlayed BOOLEAN, fileType TEXT, isAnalyzed BOOLEAN, dateCreated DATETIME, dateAdded DATETIME, isAvailable BOOLEAN, isMetadataOfPackedTrackChanged BOOLEAN, isPerfomanceDataOfPackedTrackChanged BOOLEAN, playedIndicator INTEGER, isMetadataImported BOOLEAN, pdbImportKey INTEGER, streamingSource TEXT, uri TEXT, isBeatGridLocked BOOLEAN, originDatabaseUuid TEXT, originTrackId INTEGER, streamingFlags INTEGER, explicitLyrics BOOLEAN, lastEditTime DATETIME, CONSTRAINT C_originDatabaseUuid_originTrackId UNIQUE (originDatabaseUuid, originTrackId), CONSTRAINT C_path UNIQUE (path), FOREIGN KEY (albumArtId) REFERENCES AlbumArt (id) ON DELETE RESTRICT )`,
		trackCols,
		idx("index_Track_filename", false, "filename"), idx("index_Track_albumArtId", false, "albumArtId"), idx("index_Track_uri", false, "uri"),
		idx("index_Track_title", false, "title"), idx("index_Track_length", false, "length"), idx("index_Track_rating", false, "rating"),
		idx("index_Track_year", false, "year"), idx("index_Track_dateAdded", false, "dateAdded"), idx("index_Track_genre", false, "genre"),
		idx("index_Track_artist", false, "artist"), idx("index_Track_album", false, "album"), idx("index_Track_key", false, "key")))

	t = replace(t, table("", "PerformanceData",
		`CREATE TABLE PerformanceData ( trackId INTEGER PRIMARY KEY, trackData BLOB, overviewWaveFormData BLOB, beatData BLOB, quickCues BLOB, loops BLOB, thirdPartySourceId INTEGER, activeOnLoadLoops INTEGER, FOREIGN KEY(trackId) REFERENCES Track(id) ON DELETE CASCADE ON UPDATE CASCADE )`,
		[]Column{colPK("trackId", "INTEGER", 1), col("trackData", "BLOB"), col("overviewWaveFormData", "BLOB"), col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"), col("thirdPartySourceId", "INTEGER"), col("activeOnLoadLoops", "INTEGER")}))

	t = replace(t, table("", "Pack",
		`CREATE TABLE Pack ( id INTEGER PRIMARY KEY AUTOINCREMENT, packId TEXT, changeLogDatabaseUuid TEXT, changeLogId INTEGER, lastPackTime DATETIME )`,
		[]Column{colPK("id", "INTEGER", 1), col("packId", "TEXT"), col("changeLogDatabaseUuid", "TEXT"), col("changeLogId", "INTEGER"), col("lastPackTime", "DATETIME")}))

	return t
}

// packTimestampTriggerDDL auto-populates Pack.lastPackTime/changeLogId
// on insert (3.1.0+ only). Grounded on schema_3_1_0.cpp lines 88-94.
func packTimestampTriggerDDL() []string {
	return []string{
		`CREATE TRIGGER trigger_after_insert_Pack_timestamp AFTER INSERT ON Pack FOR EACH ROW BEGIN UPDATE Pack SET lastPackTime = CURRENT_TIMESTAMP WHERE id = NEW.id; END`,
		`CREATE TRIGGER trigger_after_insert_Pack_changeLogId AFTER INSERT ON Pack FOR EACH ROW WHEN NEW.changeLogId IS NULL BEGIN UPDATE Pack SET changeLogId = NEW.id WHERE id = NEW.id; END`,
	}
}

// trackInsertPerformanceRowTriggerDDL ensures every Track insert gets
// a matching PerformanceData row (3.x only, since PerformanceData is
// now a real 1:1 child table rather than a view over Track itself).
// Grounded on schema_3_1_0.cpp:201 (trigger_after_insert_Track_insert_performance_data).
func trackInsertPerformanceRowTriggerDDL() string {
	return `CREATE TRIGGER trigger_after_insert_Track_insert_performance_data AFTER INSERT ON Track FOR EACH ROW BEGIN INSERT INTO PerformanceData (trackId) VALUES (NEW.id); END`
}
