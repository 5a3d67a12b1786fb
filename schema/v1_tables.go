package schema

// Tables for the v1 (legacy two-file) generation. 1.6.0 is grounded
// directly on schema_1_6_0.cpp's create_music_schema/
// create_performance_schema; every later v1 variant is built by
// cloning its immediate predecessor's table set and patching exactly
// the tables the corresponding C++ subclass overrides — the same
// refinement lattice the source itself uses (see schema_1_7_1.hpp,
// schema_1_9_1.hpp: each lists only the verify_* methods it overrides).

// 1.7.1 starts from 1.6.0's set and overrides Track (adds
// pdbImportKey), Information (adds
// lastRekordBoxLibraryImportReadCounter) and PerformanceData (adds
// hasRekordboxValues).

func tablesV1_6_0() []Table {
	return []Table{
		table("music", "Track",
			`CREATE TABLE music.Track ( [id] INTEGER, [playOrder] INTEGER , [length] INTEGER , [lengthCalculated] INTEGER , [bpm] INTEGER , [year] INTEGER , [path] TEXT , [filename] TEXT , [bitrate] INTEGER , [bpmAnalyzed] REAL , [trackType] INTEGER , [isExternalTrack] NUMERIC , [uuidOfExternalDatabase] TEXT , [idTrackInExternalDatabase] INTEGER , [idAlbumArt] INTEGER REFERENCES AlbumArt ( id ) ON DELETE RESTRICT, PRIMARY KEY ( [id] ) )`,
			[]Column{
				colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"),
				col("lengthCalculated", "INTEGER"), col("bpm", "INTEGER"), col("year", "INTEGER"),
				col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
				col("bpmAnalyzed", "REAL"), col("trackType", "INTEGER"), col("isExternalTrack", "NUMERIC"),
				col("uuidOfExternalDatabase", "TEXT"), col("idTrackInExternalDatabase", "INTEGER"),
				col("idAlbumArt", "INTEGER"),
			},
			idx("index_Track_id", false, "id"), idx("index_Track_path", false, "path"),
			idx("index_Track_filename", false, "filename"), idx("index_Track_isExternalTrack", false, "isExternalTrack"),
			idx("index_Track_uuidOfExternalDatabase", false, "uuidOfExternalDatabase"),
			idx("index_Track_idTrackInExternalDatabase", false, "idTrackInExternalDatabase"),
			idx("index_Track_idAlbumArt", false, "idAlbumArt")),

		table("music", "Information",
			`CREATE TABLE music.Information ( [id] INTEGER, [uuid] TEXT , [schemaVersionMajor] INTEGER , [schemaVersionMinor] INTEGER , [schemaVersionPatch] INTEGER , [currentPlayedIndiciator] INTEGER , PRIMARY KEY ( [id] ) )`,
			[]Column{
				colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"),
				col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"),
				col("currentPlayedIndiciator", "INTEGER"),
			},
			idx("index_Information_id", false, "id")),

		table("music", "MetaData",
			`CREATE TABLE music.MetaData ( [id] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE, [type] INTEGER, [text] TEXT , PRIMARY KEY ( [id], [type] ) )`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("text", "TEXT")},
			idx("index_MetaData_id", false, "id"), idx("index_MetaData_type", false, "type"), idx("index_MetaData_text", false, "text")),

		table("music", "MetaDataInteger",
			`CREATE TABLE music.MetaDataInteger ( [id] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE, [type] INTEGER, [value] INTEGER , PRIMARY KEY ( [id], [type] ) )`,
			[]Column{colPK("id", "INTEGER", 1), colPK("type", "INTEGER", 2), col("value", "INTEGER")},
			idx("index_MetaDataInteger_id", false, "id"), idx("index_MetaDataInteger_type", false, "type"), idx("index_MetaDataInteger_value", false, "value")),

		table("music", "Playlist",
			`CREATE TABLE music.Playlist ( [id] INTEGER, [title] TEXT , PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("title", "TEXT")},
			idx("index_Playlist_id", false, "id")),

		table("music", "PlaylistTrackList",
			`CREATE TABLE music.PlaylistTrackList ( [playlistId] INTEGER REFERENCES Playlist ( id ) ON DELETE CASCADE, [trackId] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE, [trackIdInOriginDatabase] INTEGER , [databaseUuid] TEXT , [trackNumber] INTEGER )`,
			[]Column{col("playlistId", "INTEGER"), col("trackId", "INTEGER"), col("trackIdInOriginDatabase", "INTEGER"), col("databaseUuid", "TEXT"), col("trackNumber", "INTEGER")},
			idx("index_PlaylistTrackList_playlistId", false, "playlistId"), idx("index_PlaylistTrackList_trackId", false, "trackId")),

		table("music", "Preparelist",
			`CREATE TABLE music.Preparelist ( [id] INTEGER, [title] TEXT , PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("title", "TEXT")},
			idx("index_Preparelist_id", false, "id")),

		table("music", "PreparelistTrackList",
			`CREATE TABLE music.PreparelistTrackList ( [playlistId] INTEGER REFERENCES Preparelist ( id ) ON DELETE CASCADE, [trackId] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE, [trackIdInOriginDatabase] INTEGER , [databaseUuid] TEXT , [trackNumber] INTEGER )`,
			[]Column{col("playlistId", "INTEGER"), col("trackId", "INTEGER"), col("trackIdInOriginDatabase", "INTEGER"), col("databaseUuid", "TEXT"), col("trackNumber", "INTEGER")},
			idx("index_PreparelistTrackList_playlistId", false, "playlistId"), idx("index_PreparelistTrackList_trackId", false, "trackId")),

		table("music", "Historylist",
			`CREATE TABLE music.Historylist ( [id] INTEGER, [title] TEXT , PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("title", "TEXT")},
			idx("index_Historylist_id", false, "id")),

		table("music", "HistorylistTrackList",
			`CREATE TABLE music.HistorylistTrackList ( [historylistId] INTEGER REFERENCES Historylist ( id ) ON DELETE CASCADE, [trackId] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE, [trackIdInOriginDatabase] INTEGER , [databaseUuid] TEXT , [date] INTEGER )`,
			[]Column{col("historylistId", "INTEGER"), col("trackId", "INTEGER"), col("trackIdInOriginDatabase", "INTEGER"), col("databaseUuid", "TEXT"), col("date", "INTEGER")},
			idx("index_HistorylistTrackList_historylistId", false, "historylistId"), idx("index_HistorylistTrackList_trackId", false, "trackId"), idx("index_HistorylistTrackList_date", false, "date")),

		table("music", "Crate",
			`CREATE TABLE music.Crate ( [id] INTEGER, [title] TEXT , [path] TEXT , PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("title", "TEXT"), col("path", "TEXT")},
			idx("index_Crate_id", false, "id"), idx("index_Crate_title", false, "title"), idx("index_Crate_path", false, "path")),

		table("music", "CrateParentList",
			`CREATE TABLE music.CrateParentList ( [crateOriginId] INTEGER REFERENCES Crate ( id ) ON DELETE CASCADE, [crateParentId] INTEGER REFERENCES Crate ( id ) ON DELETE CASCADE)`,
			[]Column{col("crateOriginId", "INTEGER"), col("crateParentId", "INTEGER")},
			idx("index_CrateParentList_crateOriginId", false, "crateOriginId"), idx("index_CrateParentList_crateParentId", false, "crateParentId")),

		table("music", "CrateTrackList",
			`CREATE TABLE music.CrateTrackList ( [crateId] INTEGER REFERENCES Crate ( id ) ON DELETE CASCADE, [trackId] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE)`,
			[]Column{col("crateId", "INTEGER"), col("trackId", "INTEGER")},
			idx("index_CrateTrackList_crateId", false, "crateId"), idx("index_CrateTrackList_trackId", false, "trackId")),

		table("music", "CrateHierarchy",
			`CREATE TABLE music.CrateHierarchy ( [crateId] INTEGER REFERENCES Crate ( id ) ON DELETE CASCADE, [crateIdChild] INTEGER REFERENCES Crate ( id ) ON DELETE CASCADE)`,
			[]Column{col("crateId", "INTEGER"), col("crateIdChild", "INTEGER")},
			idx("index_CrateHierarchy_crateId", false, "crateId"), idx("index_CrateHierarchy_crateIdChild", false, "crateIdChild")),

		table("music", "AlbumArt",
			`CREATE TABLE music.AlbumArt ( [id] INTEGER, [hash] TEXT , [albumArt] BLOB , PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("hash", "TEXT"), col("albumArt", "BLOB")},
			idx("index_AlbumArt_id", false, "id"), idx("index_AlbumArt_hash", false, "hash")),

		table("music", "CopiedTrack",
			`CREATE TABLE music.CopiedTrack ( [trackId] INTEGER REFERENCES Track ( id ) ON DELETE CASCADE, [uuidOfSourceDatabase] TEXT , [idOfTrackInSourceDatabase] INTEGER , PRIMARY KEY ( [trackId] ) )`,
			[]Column{colPK("trackId", "INTEGER", 1), col("uuidOfSourceDatabase", "TEXT"), col("idOfTrackInSourceDatabase", "INTEGER")},
			idx("index_CopiedTrack_trackId", false, "trackId")),

		table("perfdata", "Information",
			`CREATE TABLE perfdata.Information ( [id] INTEGER, [uuid] TEXT , [schemaVersionMajor] INTEGER , [schemaVersionMinor] INTEGER , [schemaVersionPatch] INTEGER , [currentPlayedIndiciator] INTEGER , PRIMARY KEY ( [id] ) )`,
			[]Column{colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"), col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"), col("currentPlayedIndiciator", "INTEGER")},
			idx("index_Information_id", false, "id")),

		table("perfdata", "PerformanceData",
			`CREATE TABLE perfdata.PerformanceData ( [id] INTEGER, [isAnalyzed] NUMERIC , [isRendered] NUMERIC , [trackData] BLOB , [highResolutionWaveFormData] BLOB , [overviewWaveFormData] BLOB , [beatData] BLOB , [quickCues] BLOB , [loops] BLOB , [hasSeratoValues] NUMERIC , PRIMARY KEY ( [id] ) )`,
			[]Column{
				colPK("id", "INTEGER", 1), col("isAnalyzed", "NUMERIC"), col("isRendered", "NUMERIC"),
				col("trackData", "BLOB"), col("highResolutionWaveFormData", "BLOB"), col("overviewWaveFormData", "BLOB"),
				col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"), col("hasSeratoValues", "NUMERIC"),
			},
			idx("index_PerformanceData_id", false, "id")),
	}
}

// tablesV1_7_1 overrides Track (+pdbImportKey), Information
// (+lastRekordBoxLibraryImportReadCounter, both schemas) and
// PerformanceData (+hasRekordboxValues) on top of 1.6.0 — exactly the
// set schema_1_7_1.hpp declares as overridden.
func tablesV1_7_1() []Table {
	t := tablesV1_6_0()

	t = replace(t, table("music", "Track",
		`CREATE TABLE music.Track ( [id] INTEGER, [playOrder] INTEGER , [length] INTEGER , [lengthCalculated] INTEGER , [bpm] INTEGER , [year] INTEGER , [path] TEXT , [filename] TEXT , [bitrate] INTEGER , [bpmAnalyzed] REAL , [trackType] INTEGER , [isExternalTrack] NUMERIC , [uuidOfExternalDatabase] TEXT , [idTrackInExternalDatabase] INTEGER , [idAlbumArt] INTEGER REFERENCES AlbumArt ( id ) ON DELETE RESTRICT, [pdbImportKey] INTEGER , PRIMARY KEY ( [id] ) )`,
		[]Column{
			colPK("id", "INTEGER", 1), col("playOrder", "INTEGER"), col("length", "INTEGER"),
			col("lengthCalculated", "INTEGER"), col("bpm", "INTEGER"), col("year", "INTEGER"),
			col("path", "TEXT"), col("filename", "TEXT"), col("bitrate", "INTEGER"),
			col("bpmAnalyzed", "REAL"), col("trackType", "INTEGER"), col("isExternalTrack", "NUMERIC"),
			col("uuidOfExternalDatabase", "TEXT"), col("idTrackInExternalDatabase", "INTEGER"),
			col("idAlbumArt", "INTEGER"), col("pdbImportKey", "INTEGER"),
		},
		idx("index_Track_id", false, "id"), idx("index_Track_path", false, "path"),
		idx("index_Track_filename", false, "filename"), idx("index_Track_isExternalTrack", false, "isExternalTrack"),
		idx("index_Track_uuidOfExternalDatabase", false, "uuidOfExternalDatabase"),
		idx("index_Track_idTrackInExternalDatabase", false, "idTrackInExternalDatabase"),
		idx("index_Track_idAlbumArt", false, "idAlbumArt")))

	infoCols := []Column{
		colPK("id", "INTEGER", 1), col("uuid", "TEXT"), col("schemaVersionMajor", "INTEGER"),
		col("schemaVersionMinor", "INTEGER"), col("schemaVersionPatch", "INTEGER"),
		col("currentPlayedIndiciator", "INTEGER"), col("lastRekordBoxLibraryImportReadCounter", "INTEGER"),
	}
	t = replace(t, table("music", "Information",
		`CREATE TABLE music.Information ( [id] INTEGER, [uuid] TEXT , [schemaVersionMajor] INTEGER , [schemaVersionMinor] INTEGER , [schemaVersionPatch] INTEGER , [currentPlayedIndiciator] INTEGER , [lastRekordBoxLibraryImportReadCounter] INTEGER , PRIMARY KEY ( [id] ) )`,
		infoCols, idx("index_Information_id", false, "id")))
	t = replace(t, table("perfdata", "Information",
		`CREATE TABLE perfdata.Information ( [id] INTEGER, [uuid] TEXT , [schemaVersionMajor] INTEGER , [schemaVersionMinor] INTEGER , [schemaVersionPatch] INTEGER , [currentPlayedIndiciator] INTEGER , [lastRekordBoxLibraryImportReadCounter] INTEGER , PRIMARY KEY ( [id] ) )`,
		infoCols, idx("index_Information_id", false, "id")))

	t = replace(t, table("perfdata", "PerformanceData",
		`CREATE TABLE perfdata.PerformanceData ( [id] INTEGER, [isAnalyzed] NUMERIC , [isRendered] NUMERIC , [trackData] BLOB , [highResolutionWaveFormData] BLOB , [overviewWaveFormData] BLOB , [beatData] BLOB , [quickCues] BLOB , [loops] BLOB , [hasSeratoValues] NUMERIC , [hasRekordboxValues] NUMERIC , PRIMARY KEY ( [id] ) )`,
		[]Column{
			colPK("id", "INTEGER", 1), col("isAnalyzed", "NUMERIC"), col("isRendered", "NUMERIC"),
			col("trackData", "BLOB"), col("highResolutionWaveFormData", "BLOB"), col("overviewWaveFormData", "BLOB"),
			col("beatData", "BLOB"), col("quickCues", "BLOB"), col("loops", "BLOB"),
			col("hasSeratoValues", "NUMERIC"), col("hasRekordboxValues", "NUMERIC"),
		},
		idx("index_PerformanceData_id", false, "id")))

	return t
}
