package schema

// v1 List-era tables: from 1.9.1 onward, Crate/Playlist/Historylist/
// Preparelist stop being separate tables and become views over a
// single polymorphic List table (type 1=playlist, 2=historylist,
// 3=preparelist, 4=crate), per the comment at schema_1_9_1.cpp:533
// ("This replaces the previous dedicated tables for crates..."). This
// is grounded directly on schema_1_9_1.cpp and schema_1_17_0.cpp.
//
// Perfdata-side Information/PerformanceData are unchanged from 1.7.1
// across this whole era until 1.17.0 adds perfdata.ChangeLog.

func tablesV1_9_1() []Table {
	perf := []Table{
		table("perfdata", "Information",
			`CREATE TABLE perfdata.Information ( [id] INTEGER, [uuid] TEXT, [schemaVersionMajor] INTEGER, [schemaVersionMinor] INTEGER, [schemaVersionPatch] INTEGER, [currentPlayedIndiciator] INTEGER, [lastRekordBoxLibraryImportReadCounter] INTEGER, PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"), col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"), col("currentPlayedIndiciator", "INTEGER"), col("lastRekordBoxLibraryImportReadCounter", "INTEGER")},
			idx("index_Information_id", false, "id")),
		table("perfdata", "PerformanceData",
			`CREATE TABLE perfdata.PerformanceData ( [id] INTEGER, [isAnalyzed] NUMERIC, [isRendered] NUMERIC, [trackData] BLOB, [highResolutionWaveFormData] BLOB, [overviewWaveFormData] BLOB, [beatData] BLOB, [quickCues] BLOB, [loops] BLOB, [hasSeratoValues] NUMERIC, [hasRekordboxValues] NUMERIC, PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("isAnalyzed", "NUMERIC"), col("isRendered", "NUMERIC"), col("trackData", "BLOB"), col("highResolutionWaveFormData", "BLOB"), col("overviewWaveFormData", "BLOB"), col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"), col("hasSeratoValues", "NUMERIC"), col("hasRekordboxValues", "NUMERIC")},
			idx("index_PerformanceData_id", false, "id")),
	}

	music := []Table{
		table("music", "Track",
			`CREATE TABLE music.Track ( [id] INTEGER, [playOrder] INTEGER, [length] INTEGER, [lengthCalculated] INTEGER, [bpm] INTEGER, [year] INTEGER, [path] TEXT, [filename] TEXT, [bitrate] INTEGER, [bpmAnalyzed] REAL, [trackType] INTEGER, [isExternalTrack] NUMERIC, [uuidOfExternalDatabase] TEXT, [idTrackInExternalDatabase] INTEGER, [idAlbumArt] INTEGER, [pdbImportKey] INTEGER, PRIMARY KEY ( [id] ), FOREIGN KEY ( [idAlbumArt] ) REFERENCES AlbumArt ( [id] ) ON DELETE RESTRICT)`,
			[]Column{colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"), col("lengthCalculated", "INTEGER"), col("bpm", "INTEGER"), col("year", "INTEGER"), col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"), col("bpmAnalyzed", "REAL"), col("trackType", "INTEGER"), col("isExternalTrack", "NUMERIC"), col("uuidOfExternalDatabase", "TEXT"), col("idTrackInExternalDatabase", "INTEGER"), col("idAlbumArt", "INTEGER"), col("pdbImportKey", "INTEGER")},
			idx("index_Track_id", false, "id"), idx("index_Track_path", false, "path"), idx("index_Track_filename", false, "filename"),
			idx("index_Track_isExternalTrack", false, "isExternalTrack"), idx("index_Track_uuidOfExternalDatabase", false, "uuidOfExternalDatabase"),
			idx("index_Track_idTrackInExternalDatabase", false, "idTrackInExternalDatabase"), idx("index_Track_idAlbumArt", false, "idAlbumArt")),

		table("music", "Information",
			`CREATE TABLE music.Information ( [id] INTEGER, [uuid] TEXT, [schemaVersionMajor] INTEGER, [schemaVersionMinor] INTEGER, [schemaVersionPatch] INTEGER, [currentPlayedIndiciator] INTEGER, [lastRekordBoxLibraryImportReadCounter] INTEGER, PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"), col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"), col("currentPlayedIndiciator", "INTEGER"), col("lastRekordBoxLibraryImportReadCounter", "INTEGER")},
			idx("index_Information_id", false, "id")),

		table("music", "MetaData",
			`CREATE TABLE music.MetaData ( [id] INTEGER, [type] INTEGER, [text] TEXT, PRIMARY KEY ( [id], [type] ), FOREIGN KEY ( [id] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("text", "TEXT")},
			idx("index_MetaData_id", false, "id"), idx("index_MetaData_type", false, "type"), idx("index_MetaData_text", false, "text")),

		table("music", "MetaDataInteger",
			`CREATE TABLE music.MetaDataInteger ( [id] INTEGER, [type] INTEGER, [value] INTEGER, PRIMARY KEY ( [id], [type] ), FOREIGN KEY ( [id] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("value", "INTEGER")},
			idx("index_MetaDataInteger_id", false, "id"), idx("index_MetaDataInteger_type", false, "type"), idx("index_MetaDataInteger_value", false, "value")),

		table("music", "AlbumArt",
			`CREATE TABLE music.AlbumArt ( [id] INTEGER, [hash] TEXT, [albumArt] BLOB, PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("hash", "TEXT"), col("albumArt", "BLOB")},
			idx("index_AlbumArt_id", false, "id"), idx("index_AlbumArt_hash", false, "hash")),

		table("music", "CopiedTrack",
			`CREATE TABLE music.CopiedTrack ( [trackId] INTEGER, [uuidOfSourceDatabase] TEXT, [idOfTrackInSourceDatabase] INTEGER, PRIMARY KEY ( [trackId] ), FOREIGN KEY ( [trackId] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("trackId", "INTEGER", 1), col("uuidOfSourceDatabase", "TEXT"), col("idOfTrackInSourceDatabase", "INTEGER")},
			idx("index_CopiedTrack_trackId", false, "trackId")),

		table("music", "List",
			`CREATE TABLE music.List ( [id] INTEGER, [type] INTEGER, [title] TEXT, [path] TEXT, [isFolder] NUMERIC, PRIMARY KEY ( [id], [type] ) )`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("title", "TEXT"), col("path", "TEXT"), col("isFolder", "NUMERIC")},
			idx("index_List_id", false, "id"), idx("index_List_type", false, "type"), idx("index_List_path", false, "path")),

		table("music", "ListTrackList",
			`CREATE TABLE music.ListTrackList ( [id] INTEGER, [listId] INTEGER, [listType] INTEGER, [trackId] INTEGER, [trackIdInOriginDatabase] INTEGER, [databaseUuid] TEXT, [trackNumber] INTEGER, PRIMARY KEY ( [id] ), FOREIGN KEY ( [listId], [listType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE, FOREIGN KEY ( [trackId] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("id", "INTEGER", 1), col("listId", "INTEGER"), col("listType", "INTEGER"), col("trackId", "INTEGER"), col("trackIdInOriginDatabase", "INTEGER"), col("databaseUuid", "TEXT"), col("trackNumber", "INTEGER")}),

		table("music", "ListHierarchy",
			`CREATE TABLE music.ListHierarchy ( [listId] INTEGER, [listType] INTEGER, [listIdChild] INTEGER, [listTypeChild] INTEGER, FOREIGN KEY ( [listId], [listType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE, FOREIGN KEY ( [listIdChild], [listTypeChild] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE)`,
			[]Column{col("listId", "INTEGER"), col("listType", "INTEGER"), col("listIdChild", "INTEGER"), col("listTypeChild", "INTEGER")}),

		table("music", "ListParentList",
			`CREATE TABLE music.ListParentList ( [listOriginId] INTEGER, [listOriginType] INTEGER, [listParentId] INTEGER, [listParentType] INTEGER, FOREIGN KEY ( [listOriginId], [listOriginType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE, FOREIGN KEY ( [listParentId], [listParentType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE)`,
			[]Column{col("listOriginId", "INTEGER"), col("listOriginType", "INTEGER"), col("listParentId", "INTEGER"), col("listParentType", "INTEGER")}),

		view("music", "Playlist", `CREATE VIEW music.Playlist AS SELECT id, title FROM List WHERE type = 1`,
			[]Column{col("id", ""), col("title", "")}),
		view("music", "Historylist", `CREATE VIEW music.Historylist AS SELECT id, title FROM List WHERE type = 2`,
			[]Column{col("id", ""), col("title", "")}),
		view("music", "Preparelist", `CREATE VIEW music.Preparelist AS SELECT id, title FROM List WHERE type = 3`,
			[]Column{col("id", ""), col("title", "")}),
		view("music", "Crate", `CREATE VIEW music.Crate AS SELECT id AS id, title AS title, path AS path FROM List WHERE type = 4`,
			[]Column{col("id", ""), col("title", ""), col("path", "")}),
	}

	return append(music, perf...)
}

// listInsteadOfTriggerDDL returns the INSTEAD OF trigger DDL that routes
// Playlist/Historylist/Preparelist/Crate view operations back onto the
// List table, grounded on schema_1_9_1.cpp lines 630+ and
// schema_1_17_0.cpp lines 386-600. Shared verbatim by every List-era
// v1 variant since the trigger bodies reference only columns present
// from 1.9.1 onward.
func listInsteadOfTriggerDDL() []string {
	return []string{
		`CREATE TRIGGER music.trigger_delete_Playlist INSTEAD OF DELETE ON Playlist FOR EACH ROW BEGIN DELETE FROM List WHERE type = 1 AND OLD.id = id AND OLD.title = title; END`,
		`CREATE TRIGGER music.trigger_update_Playlist INSTEAD OF UPDATE ON Playlist FOR EACH ROW BEGIN UPDATE List SET id = NEW.id, title = NEW.title WHERE id = OLD.id AND title = OLD.title; END`,
		`CREATE TRIGGER music.trigger_insert_Playlist INSTEAD OF INSERT ON Playlist FOR EACH ROW BEGIN INSERT INTO List ( id, type, title, path, isFolder ) VALUES ( NEW.id, 1, NEW.title, NEW.title || ';', 0 ); END`,
		`CREATE TRIGGER music.trigger_delete_Historylist INSTEAD OF DELETE ON Historylist FOR EACH ROW BEGIN DELETE FROM List WHERE type = 2 AND OLD.id = id AND OLD.title = title; END`,
		`CREATE TRIGGER music.trigger_insert_Historylist INSTEAD OF INSERT ON Historylist FOR EACH ROW BEGIN INSERT INTO List ( id, type, title, isFolder ) VALUES ( NEW.id, 2, NEW.title, 0 ); END`,
		`CREATE TRIGGER music.trigger_delete_Preparelist INSTEAD OF DELETE ON Preparelist FOR EACH ROW BEGIN DELETE FROM List WHERE type = 3 AND OLD.id = id AND OLD.title = title; END`,
		`CREATE TRIGGER music.trigger_insert_Preparelist INSTEAD OF INSERT ON Preparelist FOR EACH ROW BEGIN INSERT INTO List ( id, type, title, isFolder ) VALUES ( NEW.id, 3, NEW.title, 0 ); END`,
		`CREATE TRIGGER music.trigger_delete_Crate INSTEAD OF DELETE ON Crate FOR EACH ROW BEGIN DELETE FROM List WHERE type = 4 AND OLD.id = id AND OLD.title = title AND OLD.path = path; END`,
		`CREATE TRIGGER music.trigger_update_Crate INSTEAD OF UPDATE ON Crate FOR EACH ROW BEGIN UPDATE List SET title = NEW.title, path = NEW.path WHERE id = OLD.id AND type = 4; END`,
		`CREATE TRIGGER music.trigger_insert_Crate INSTEAD OF INSERT ON Crate FOR EACH ROW BEGIN INSERT INTO List ( id, type, title, path, isFolder ) VALUES ( NEW.id, 4, NEW.title, NEW.path, 0 ); END`,
	}
}

// tablesV1_11_1 adds List.ordering/List.trackCount as typed INTEGER
// columns — the type declaration 1.13.1 is later documented as
// omitting, which only makes sense if an earlier variant carried it
// with a type. Exact introduction point is not present in the
// retrieved source extract; modeled here as the nearest predecessor to
// 1.13.1 per the refinement-lattice approach spec.md itself endorses.
func tablesV1_11_1() []Table {
	t := tablesV1_9_1()
	return replace(t, table("music", "List",
		`CREATE TABLE music.List ( [id] INTEGER, [type] INTEGER, [title] TEXT, [path] TEXT, [isFolder] NUMERIC, [trackCount] INTEGER, [ordering] INTEGER, PRIMARY KEY ( [id], [type] ) )`,
		[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("title", "TEXT"), col("path", "TEXT"), col("isFolder", "NUMERIC"), col("trackCount", "INTEGER"), col("ordering", "INTEGER")},
		idx("index_List_id", false, "id"), idx("index_List_type", false, "type"), idx("index_List_path", false, "path")))
}

func tablesV1_13_0() []Table { return tablesV1_11_1() }

// tablesV1_13_1 is the variant spec.md calls out by name: List.ordering
// and List.trackCount drop their type declaration entirely, carrying
// only a literal `DEFAULT [0]`. Grounded verbatim on schema_1_13_1.cpp
// lines 191-193.
func tablesV1_13_1() []Table {
	t := tablesV1_11_1()
	return replace(t, table("music", "List",
		`CREATE TABLE music.List ( [id] INTEGER, [type] INTEGER, [title] TEXT, [path] TEXT, [isFolder] NUMERIC, [trackCount] DEFAULT [0], [ordering] DEFAULT [0], PRIMARY KEY ( [id], [type] ) )`,
		[]Column{
			colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("title", "TEXT"), col("path", "TEXT"), col("isFolder", "NUMERIC"),
			colDef("trackCount", "", "[0]"), colDef("ordering", "", "[0]"),
		},
		idx("index_List_id", false, "id"), idx("index_List_type", false, "type"), idx("index_List_path", false, "path")))
}

// tablesV1_13_2 restores the explicit INTEGER type seen again by
// 1.17.0 — the 1.13.1 typeless form is documented as a one-patch
// quirk, not a lasting change.
func tablesV1_13_2() []Table { return tablesV1_11_1() }

func tablesV1_15_0() []Table {
	t := tablesV1_11_1()
	return replace(t, table("music", "List",
		`CREATE TABLE music.List ( [id] INTEGER, [type] INTEGER, [title] TEXT, [path] TEXT, [isFolder] NUMERIC, [trackCount] INTEGER, [ordering] INTEGER, [isExplicitlyExported] NUMERIC DEFAULT 1, PRIMARY KEY ( [id], [type] ) )`,
		[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("title", "TEXT"), col("path", "TEXT"), col("isFolder", "NUMERIC"), col("trackCount", "INTEGER"), col("ordering", "INTEGER"), colDef("isExplicitlyExported", "NUMERIC", "1")},
		idx("index_List_id", false, "id"), idx("index_List_type", false, "type"), idx("index_List_path", false, "path")))
}

// tablesV1_17_0 is fully grounded on schema_1_17_0.cpp: Track/
// Information/AlbumArt gain autoincrement primary keys, Track gains
// fileBytes/uri and a unique path constraint, List gains
// isExplicitlyExported, the crate/playlist track-list views move onto
// ListTrackList/ListHierarchy/ListParentList, and music.Pack/
// music.ChangeLog/perfdata.ChangeLog appear for the first time.
func tablesV1_17_0() []Table {
	t := []Table{
		table("music", "Track",
			`CREATE TABLE music.Track ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [playOrder] INTEGER, [length] INTEGER, [lengthCalculated] INTEGER, [bpm] INTEGER, [year] INTEGER, [path] TEXT, [filename] TEXT, [bitrate] INTEGER, [bpmAnalyzed] REAL, [trackType] INTEGER, [isExternalTrack] NUMERIC, [uuidOfExternalDatabase] TEXT, [idTrackInExternalDatabase] INTEGER, [idAlbumArt] INTEGER, [fileBytes] INTEGER, [pdbImportKey] INTEGER, [uri] TEXT, CONSTRAINT C_path UNIQUE ([path]), FOREIGN KEY ( [idAlbumArt] ) REFERENCES AlbumArt ( [id] ) ON DELETE RESTRICT)`,
			[]Column{
				colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"), col("lengthCalculated", "INTEGER"),
				col("bpm", "INTEGER"), col("year", "INTEGER"), col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
				col("bpmAnalyzed", "REAL"), col("trackType", "INTEGER"), col("isExternalTrack", "NUMERIC"), col("uuidOfExternalDatabase", "TEXT"),
				col("idTrackInExternalDatabase", "INTEGER"), col("idAlbumArt", "INTEGER"), col("fileBytes", "INTEGER"), col("pdbImportKey", "INTEGER"), col("uri", "TEXT"),
			},
			idx("index_Track_id", false, "id"), idx("index_Track_path", false, "path"), idx("index_Track_filename", false, "filename"),
			idx("index_Track_isExternalTrack", false, "isExternalTrack"), idx("index_Track_uuidOfExternalDatabase", false, "uuidOfExternalDatabase"),
			idx("index_Track_idTrackInExternalDatabase", false, "idTrackInExternalDatabase"), idx("index_Track_idAlbumArt", false, "idAlbumArt")),

		table("music", "Information",
			`CREATE TABLE music.Information ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [uuid] TEXT, [schemaVersionMajor] INTEGER, [schemaVersionMinor] INTEGER, [schemaVersionPatch] INTEGER, [currentPlayedIndiciator] INTEGER, [lastRekordBoxLibraryImportReadCounter] INTEGER)`,
			[]Column{colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"), col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"), col("currentPlayedIndiciator", "INTEGER"), col("lastRekordBoxLibraryImportReadCounter", "INTEGER")}),

		table("music", "MetaData",
			`CREATE TABLE music.MetaData ( [id] INTEGER, [type] INTEGER, [text] TEXT, PRIMARY KEY ( [id], [type] ), FOREIGN KEY ( [id] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("text", "TEXT")},
			idx("index_MetaData_id", false, "id"), idx("index_MetaData_type", false, "type"), idx("index_MetaData_text", false, "text")),

		table("music", "MetaDataInteger",
			`CREATE TABLE music.MetaDataInteger ( [id] INTEGER, [type] INTEGER, [value] INTEGER, PRIMARY KEY ( [id], [type] ), FOREIGN KEY ( [id] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("value", "INTEGER")},
			idx("index_MetaDataInteger_id", false, "id"), idx("index_MetaDataInteger_type", false, "type"), idx("index_MetaDataInteger_value", false, "value")),

		table("music", "AlbumArt",
			`CREATE TABLE music.AlbumArt ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [hash] TEXT, [albumArt] BLOB)`,
			[]Column{colPK("id", "INTEGER", 1), col("hash", "TEXT"), col("albumArt", "BLOB")}),

		table("music", "CopiedTrack",
			`CREATE TABLE music.CopiedTrack ( [trackId] INTEGER, [uuidOfSourceDatabase] TEXT, [idOfTrackInSourceDatabase] INTEGER, PRIMARY KEY ( [trackId] ), FOREIGN KEY ( [trackId] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("trackId", "INTEGER", 1), col("uuidOfSourceDatabase", "TEXT"), col("idOfTrackInSourceDatabase", "INTEGER")}),

		table("music", "List",
			`CREATE TABLE music.List ( [id] INTEGER, [type] INTEGER, [title] TEXT, [path] TEXT, [isFolder] NUMERIC, [trackCount] INTEGER, [ordering] INTEGER, [isExplicitlyExported] NUMERIC DEFAULT 1, PRIMARY KEY ( [id], [type] ) )`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("title", "TEXT"), col("path", "TEXT"), col("isFolder", "NUMERIC"), col("trackCount", "INTEGER"), col("ordering", "INTEGER"), colDef("isExplicitlyExported", "NUMERIC", "1")},
			idx("index_List_id", false, "id"), idx("index_List_type", false, "type"), idx("index_List_path", false, "path")),

		table("music", "ListTrackList",
			`CREATE TABLE music.ListTrackList ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [listId] INTEGER, [listType] INTEGER, [trackId] INTEGER, [trackIdInOriginDatabase] INTEGER, [databaseUuid] TEXT, [trackNumber] INTEGER, FOREIGN KEY ( [listId], [listType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE, FOREIGN KEY ( [trackId] ) REFERENCES Track ( [id] ) ON DELETE CASCADE)`,
			[]Column{colPK("id", "INTEGER", 1), col("listId", "INTEGER"), col("listType", "INTEGER"), col("trackId", "INTEGER"), col("trackIdInOriginDatabase", "INTEGER"), col("databaseUuid", "TEXT"), col("trackNumber", "INTEGER")},
			idx("index_ListTrackList_listId", false, "listId"), idx("index_ListTrackList_listType", false, "listType"), idx("index_ListTrackList_trackId", false, "trackId")),

		table("music", "ListHierarchy",
			`CREATE TABLE music.ListHierarchy ( [listId] INTEGER, [listType] INTEGER, [listIdChild] INTEGER, [listTypeChild] INTEGER, FOREIGN KEY ( [listId], [listType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE, FOREIGN KEY ( [listIdChild], [listTypeChild] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE)`,
			[]Column{col("listId", "INTEGER"), col("listType", "INTEGER"), col("listIdChild", "INTEGER"), col("listTypeChild", "INTEGER")},
			idx("index_ListHierarchy_listIdChild", false, "listIdChild"), idx("index_ListHierarchy_listTypeChild", false, "listTypeChild")),

		table("music", "ListParentList",
			`CREATE TABLE music.ListParentList ( [listOriginId] INTEGER, [listOriginType] INTEGER, [listParentId] INTEGER, [listParentType] INTEGER, FOREIGN KEY ( [listOriginId], [listOriginType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE, FOREIGN KEY ( [listParentId], [listParentType] ) REFERENCES List ( [id], [type] ) ON DELETE CASCADE)`,
			[]Column{col("listOriginId", "INTEGER"), col("listOriginType", "INTEGER"), col("listParentId", "INTEGER"), col("listParentType", "INTEGER")},
			idx("index_ListParentList_listOriginId", false, "listOriginId"), idx("index_ListParentList_listOriginType", false, "listOriginType"),
			idx("index_ListParentList_listParentId", false, "listParentId"), idx("index_ListParentList_listParentType", false, "listParentType")),

		table("music", "Pack",
			`CREATE TABLE music.Pack ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [packId] TEXT, [changeLogDatabaseUuid] TEXT, [changeLogId] INTEGER)`,
			[]Column{colPK("id", "INTEGER", 1), col("packId", "TEXT"), col("changeLogDatabaseUuid", "TEXT"), col("changeLogId", "INTEGER")}),

		table("music", "ChangeLog",
			`CREATE TABLE music.ChangeLog ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [itemId] INTEGER)`,
			[]Column{colPK("id", "INTEGER", 1), col("itemId", "INTEGER")}),

		view("music", "Playlist", `CREATE VIEW music.Playlist AS SELECT id, title FROM List WHERE type = 1`, []Column{col("id", ""), col("title", "")}),
		view("music", "Historylist", `CREATE VIEW music.Historylist AS SELECT id, title FROM List WHERE type = 2`, []Column{col("id", ""), col("title", "")}),
		view("music", "Preparelist", `CREATE VIEW music.Preparelist AS SELECT id, title FROM List WHERE type = 3`, []Column{col("id", ""), col("title", "")}),
		view("music", "Crate", `CREATE VIEW music.Crate AS SELECT id AS id, title AS title, path AS path FROM List WHERE type = 4`, []Column{col("id", ""), col("title", ""), col("path", "")}),

		view("music", "PlaylistTrackList",
			`CREATE VIEW music.PlaylistTrackList AS SELECT listId AS playlistId, trackId, trackIdInOriginDatabase, databaseUuid, trackNumber FROM ListTrackList AS ltl INNER JOIN List AS l ON l.id = ltl.listId AND l.type = ltl.listType WHERE ltl.listType = 1`,
			[]Column{col("playlistId", ""), col("trackId", ""), col("trackIdInOriginDatabase", ""), col("databaseUuid", ""), col("trackNumber", "")}),
		view("music", "HistorylistTrackList",
			`CREATE VIEW music.HistorylistTrackList AS SELECT listId AS historylistId, trackId, trackIdInOriginDatabase, databaseUuid, 0 AS date FROM ListTrackList AS ltl INNER JOIN List AS l ON l.id = ltl.listId AND l.type = ltl.listType WHERE ltl.listType = 2`,
			[]Column{col("historylistId", ""), col("trackId", ""), col("trackIdInOriginDatabase", ""), col("databaseUuid", ""), col("date", "")}),
		view("music", "PreparelistTrackList",
			`CREATE VIEW music.PreparelistTrackList AS SELECT listId AS playlistId, trackId, trackIdInOriginDatabase, databaseUuid, trackNumber FROM ListTrackList AS ltl INNER JOIN List AS l ON l.id = ltl.listId AND l.type = ltl.listType WHERE ltl.listType = 3`,
			[]Column{col("playlistId", ""), col("trackId", ""), col("trackIdInOriginDatabase", ""), col("databaseUuid", ""), col("trackNumber", "")}),
		view("music", "CrateTrackList",
			`CREATE VIEW music.CrateTrackList AS SELECT listId AS crateId, trackId AS trackId FROM ListTrackList AS ltl INNER JOIN List AS l ON l.id = ltl.listId AND l.type = ltl.listType WHERE ltl.listType = 4`,
			[]Column{col("crateId", ""), col("trackId", "")}),
		view("music", "CrateHierarchy",
			`CREATE VIEW music.CrateHierarchy AS SELECT listId AS crateId, listIdChild AS crateIdChild FROM ListHierarchy WHERE listType = 4 AND listTypeChild = 4`,
			[]Column{col("crateId", ""), col("crateIdChild", "")}),
		view("music", "CrateParentList",
			`CREATE VIEW music.CrateParentList AS SELECT listOriginId AS crateOriginId, listParentId AS crateParentId FROM ListParentList WHERE listOriginType = 4 AND listParentType = 4`,
			[]Column{col("crateOriginId", ""), col("crateParentId", "")}),
	}

	perf := []Table{
		table("perfdata", "Information",
			`CREATE TABLE perfdata.Information ( [id] INTEGER, [uuid] TEXT, [schemaVersionMajor] INTEGER, [schemaVersionMinor] INTEGER, [schemaVersionPatch] INTEGER, [currentPlayedIndiciator] INTEGER, [lastRekordBoxLibraryImportReadCounter] INTEGER, PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"), col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"), col("currentPlayedIndiciator", "INTEGER"), col("lastRekordBoxLibraryImportReadCounter", "INTEGER")},
			idx("index_Information_id", false, "id")),
		table("perfdata", "PerformanceData",
			`CREATE TABLE perfdata.PerformanceData ( [id] INTEGER, [isAnalyzed] NUMERIC, [isRendered] NUMERIC, [trackData] BLOB, [highResolutionWaveFormData] BLOB, [overviewWaveFormData] BLOB, [beatData] BLOB, [quickCues] BLOB, [loops] BLOB, [hasSeratoValues] NUMERIC, [hasRekordboxValues] NUMERIC, PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("isAnalyzed", "NUMERIC"), col("isRendered", "NUMERIC"), col("trackData", "BLOB"), col("highResolutionWaveFormData", "BLOB"), col("overviewWaveFormData", "BLOB"), col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"), col("hasSeratoValues", "NUMERIC"), col("hasRekordboxValues", "NUMERIC")},
			idx("index_PerformanceData_id", false, "id")),
		table("perfdata", "ChangeLog",
			`CREATE TABLE perfdata.ChangeLog ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [itemId] INTEGER)`,
			[]Column{colPK("id", "INTEGER", 1), col("itemId", "INTEGER")}),
	}

	return append(t, perf...)
}

// tablesV1_18_0 models the desktop/on-player split: they share every
// table except Track.isExternalTrack's declared type, which the
// Schema Detector probes to disambiguate. numericAffinity selects
// between the two.
func tablesV1_18_0(numericAffinity bool) []Table {
	t := tablesV1_17_0()
	trackType := "NUMERIC"
	trackDDL := `CREATE TABLE music.Track ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [playOrder] INTEGER, [length] INTEGER, [lengthCalculated] INTEGER, [bpm] INTEGER, [year] INTEGER, [path] TEXT, [filename] TEXT, [bitrate] INTEGER, [bpmAnalyzed] REAL, [trackType] INTEGER, [isExternalTrack] NUMERIC, [uuidOfExternalDatabase] TEXT, [idTrackInExternalDatabase] INTEGER, [idAlbumArt] INTEGER, [fileBytes] INTEGER, [pdbImportKey] INTEGER, [uri] TEXT, CONSTRAINT C_path UNIQUE ([path]), FOREIGN KEY ( [idAlbumArt] ) REFERENCES AlbumArt ( [id] ) ON DELETE RESTRICT)`
	if !numericAffinity {
		trackType = "BOOLEAN"
		trackDDL = `CREATE TABLE music.Track ( [id] INTEGER PRIMARY KEY AUTOINCREMENT, [playOrder] INTEGER, [length] INTEGER, [lengthCalculated] INTEGER, [bpm] INTEGER, [year] INTEGER, [path] TEXT, [filename] TEXT, [bitrate] INTEGER, [bpmAnalyzed] REAL, [trackType] INTEGER, [isExternalTrack] BOOLEAN, [uuidOfExternalDatabase] TEXT, [idTrackInExternalDatabase] INTEGER, [idAlbumArt] INTEGER, [fileBytes] INTEGER, [pdbImportKey] INTEGER, [uri] TEXT, CONSTRAINT C_path UNIQUE ([path]), FOREIGN KEY ( [idAlbumArt] ) REFERENCES AlbumArt ( [id] ) ON DELETE RESTRICT)`
	}
	return replace(t, table("music", "Track", trackDDL,
		[]Column{
			colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"), col("lengthCalculated", "INTEGER"),
			col("bpm", "INTEGER"), col("year", "INTEGER"), col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
			col("bpmAnalyzed", "REAL"), col("trackType", "INTEGER"), col("isExternalTrack", trackType), col("uuidOfExternalDatabase", "TEXT"),
			col("idTrackInExternalDatabase", "INTEGER"), col("idAlbumArt", "INTEGER"), col("fileBytes", "INTEGER"), col("pdbImportKey", "INTEGER"), col("uri", "TEXT"),
		},
		idx("index_Track_id", false, "id"), idx("index_Track_path", false, "path"), idx("index_Track_filename", false, "filename"),
		idx("index_Track_isExternalTrack", false, "isExternalTrack"), idx("index_Track_uuidOfExternalDatabase", false, "uuidOfExternalDatabase"),
		idx("index_Track_idTrackInExternalDatabase", false, "idTrackInExternalDatabase"), idx("index_Track_idAlbumArt", false, "idAlbumArt")))
}
