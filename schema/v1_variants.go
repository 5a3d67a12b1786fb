package schema

func catalogueOf(tables []Table) Catalogue { return Catalogue{Tables: tables} }

func newV1(v Variant, tables []Table, extraDDL []string) CreatorValidator {
	stmts := append(statements(tables), extraDDL...)
	return CreatorValidator{variant: v, statements: stmts, catalogue: catalogueOf(tables), seed: seedV1}
}

func newV1List(v Variant, tables []Table) CreatorValidator {
	stmts := append(statements(tables), listInsteadOfTriggerDDL()...)
	return CreatorValidator{variant: v, statements: stmts, catalogue: catalogueOf(tables), seed: seedV1List}
}

func v1Registry() map[Variant]CreatorValidator {
	reg := map[Variant]CreatorValidator{}
	reg[V1_6_0] = newV1(V1_6_0, tablesV1_6_0(), nil)
	reg[V1_7_1] = newV1(V1_7_1, tablesV1_7_1(), nil)
	reg[V1_9_1] = newV1List(V1_9_1, tablesV1_9_1())
	reg[V1_11_1] = newV1List(V1_11_1, tablesV1_11_1())
	reg[V1_13_0] = newV1List(V1_13_0, tablesV1_13_0())
	reg[V1_13_1] = newV1List(V1_13_1, tablesV1_13_1())
	reg[V1_13_2] = newV1List(V1_13_2, tablesV1_13_2())
	reg[V1_15_0] = newV1List(V1_15_0, tablesV1_15_0())
	reg[V1_17_0] = newV1List(V1_17_0, tablesV1_17_0())
	reg[V1_18_0Desktop] = newV1List(V1_18_0Desktop, tablesV1_18_0(true))
	reg[V1_18_0OS] = newV1List(V1_18_0OS, tablesV1_18_0(false))
	return reg
}
