package schema

// newV2 builds a registry entry for the unified-file generation. The
// 2.x family keeps PerformanceData as a view over Track (hence the
// view-backed INSTEAD OF trigger set); 3.x makes it a real child table
// and adds the insert-companion-row trigger in its place.
func newV2(v Variant, tables []Table) CreatorValidator {
	stmts := statements(tables)
	stmts = append(stmts, listTriggerDDLV2()...)
	for _, t := range tables {
		if t.Name == "ChangeLog" && t.Kind == KindTable {
			stmts = append(stmts, changeLogTriggerDDL())
		}
	}
	if v.Major >= 3 {
		if v.Major > 3 || v.Minor >= 1 {
			stmts = append(stmts, packTimestampTriggerDDL()...)
		}
		stmts = append(stmts, trackInsertPerformanceRowTriggerDDL())
	} else {
		stmts = append(stmts, performanceDataViewTriggerDDL()...)
	}
	return CreatorValidator{variant: v, statements: stmts, catalogue: catalogueOf(tables), seed: seedV2}
}

func v2v3Registry() map[Variant]CreatorValidator {
	reg := map[Variant]CreatorValidator{}
	reg[V2_18_0] = newV2(V2_18_0, tablesV2_18_0())
	reg[V2_20_1] = newV2(V2_20_1, tablesV2_18_0())
	reg[V2_20_2] = newV2(V2_20_2, tablesV2_18_0())
	reg[V2_20_3] = newV2(V2_20_3, tablesV2_20_3())
	reg[V2_21_0] = newV2(V2_21_0, tablesV2_21_0())
	reg[V2_21_1] = newV2(V2_21_1, tablesV2_21_1())
	reg[V2_21_2] = newV2(V2_21_2, tablesV2_21_2())
	reg[V3_0_0] = newV2(V3_0_0, tablesV3_0_0())
	reg[V3_0_1] = newV2(V3_0_1, tablesV3_0_1())
	reg[V3_1_0] = newV2(V3_1_0, tablesV3_1_0())
	return reg
}
