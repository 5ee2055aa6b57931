package etc

// modifierTables are the ETC1/ETC2 luma modifiers, indexed by
// [table][code] where code = msb<<1 | lsb.
var modifierTables = [8][4]int{
	{2, 8, -2, -8},
	{5, 17, -5, -17},
	{9, 29, -9, -29},
	{13, 42, -13, -42},
	{18, 60, -18, -60},
	{24, 80, -24, -80},
	{33, 106, -33, -106},
	{47, 183, -47, -183},
}

// punchthroughModifierTables replace modifierTables for non-opaque
// punch-through blocks; code 2 is the transparent texel.
var punchthroughModifierTables = [8][4]int{
	{0, 8, 0, -8},
	{0, 17, 0, -17},
	{0, 29, 0, -29},
	{0, 42, 0, -42},
	{0, 60, 0, -60},
	{0, 80, 0, -80},
	{0, 106, 0, -106},
	{0, 183, 0, -183},
}

// thDistances are the T and H mode distance modifiers.
var thDistances = [8]int{3, 6, 11, 16, 23, 32, 41, 64}

// eacCompatModifiers is the compat EAC alpha table: every one of the 16
// table indices selects the same row.
var eacCompatModifiers = [16][8]int{
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
	{0, 8, -8, 17, -17, 29, -29, 42},
}

// eacModifiers is the Khronos EAC modifier table.
var eacModifiers = [16][8]int{
	{-3, -6, -9, -15, 2, 5, 8, 14},
	{-3, -7, -10, -13, 2, 6, 9, 12},
	{-2, -5, -8, -13, 1, 4, 7, 12},
	{-2, -4, -6, -13, 1, 3, 5, 12},
	{-3, -6, -8, -12, 2, 5, 7, 11},
	{-3, -7, -9, -11, 2, 6, 8, 10},
	{-4, -7, -8, -11, 3, 6, 7, 10},
	{-3, -5, -8, -11, 2, 4, 7, 10},
	{-2, -6, -8, -10, 1, 5, 7, 9},
	{-2, -5, -8, -10, 1, 4, 7, 9},
	{-2, -4, -8, -10, 1, 3, 7, 9},
	{-2, -5, -7, -10, 1, 4, 6, 9},
	{-3, -4, -7, -10, 2, 3, 6, 9},
	{-1, -2, -3, -10, 0, 1, 2, 9},
	{-4, -6, -8, -9, 3, 5, 7, 8},
	{-3, -5, -7, -9, 2, 4, 6, 8},
}
