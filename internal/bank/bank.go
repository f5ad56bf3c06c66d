// Package bank holds the static question bank: one ordered list of
// questions per difficulty level. The bank is pure data, loaded at init
// and never mutated.
package bank

// MaxLevel is the highest difficulty tier in the bank.
const MaxLevel = 10

// Question is one bank entry. Answer is nil for expressions with no defined
// value (tan(90°)); selection normalizes those to 0.0 so grading never
// compares against a missing answer.
type Question struct {
	Expression string
	Answer     *float64
}

func q(expr string, ans float64) Question {
	return Question{Expression: expr, Answer: &ans}
}

func undef(expr string) Question {
	return Question{Expression: expr}
}

// Table maps level (1..MaxLevel) to that level's questions.
var Table = map[int][]Question{
	1: { // simple addition and subtraction
		q("2 + 3", 5), q("4 + 5", 9), q("7 - 2", 5), q("9 - 3", 6),
		q("1 + 6", 7), q("8 - 4", 4), q("5 + 3", 8), q("6 - 1", 5),
		q("10 - 7", 3), q("3 + 4", 7), q("9 - 8", 1), q("2 + 2", 4),
		q("8 - 5", 3), q("5 + 4", 9), q("6 + 3", 9), q("7 - 6", 1),
		q("4 + 6", 10), q("3 + 3", 6), q("9 - 5", 4), q("10 - 2", 8),
	},
	2: { // multiplication and division
		q("2 * 3", 6), q("4 * 2", 8), q("9 / 3", 3), q("12 / 4", 3),
		q("5 * 5", 25), q("8 / 2", 4), q("7 * 3", 21), q("6 * 6", 36),
		q("15 / 5", 3), q("10 / 2", 5), q("9 * 9", 81), q("3 * 4", 12),
		q("18 / 3", 6), q("14 / 2", 7), q("11 * 2", 22), q("16 / 4", 4),
		q("5 * 7", 35), q("20 / 5", 4), q("8 * 3", 24), q("24 / 6", 4),
	},
	3: { // powers and roots
		q("2^3", 8), q("3^2", 9), q("4^2", 16), q("5^2", 25),
		q("√9", 3), q("√16", 4), q("√25", 5), q("√36", 6),
		q("2^4", 16), q("3^3", 27), q("4^3", 64), q("5^3", 125),
		q("√49", 7), q("√81", 9), q("2^5", 32), q("√100", 10),
		q("3^4", 81), q("√64", 8), q("√121", 11), q("2^6", 64),
	},
	4: { // mixed operations
		q("3 + 4 * 2", 11), q("8 / 2 + 5", 9), q("6 - 3 + 2", 5),
		q("9 - 2 * 3", 3), q("10 / 5 + 6", 8), q("4 + 6 / 2", 7),
		q("7 + 3 * 2", 13), q("8 - 2 + 5", 11), q("12 / 3 + 4", 8),
		q("2 * 3 + 4", 10), q("5 + 10 / 2", 10), q("9 - 3 + 6", 12),
		q("8 / 4 + 7", 9), q("10 - 2 * 4", 2), q("6 + 2 * 3", 12),
		q("7 * 2 - 5", 9), q("9 / 3 + 8", 11), q("8 + 6 / 2", 11),
		q("12 / 4 + 9", 12), q("3 * 3 + 1", 10),
	},
	5: { // logarithms
		q("log_2(8)", 3), q("log_10(1000)", 3), q("log_3(27)", 3),
		q("log_5(25)", 2), q("log_2(16)", 4), q("log_4(64)", 3),
		q("log_10(100)", 2), q("log_2(32)", 5), q("log_3(81)", 4),
		q("log_6(36)", 2), q("log_7(49)", 2), q("log_2(4)", 2),
		q("log_9(81)", 2), q("log_10(10000)", 4), q("log_8(64)", 2),
		q("log_3(9)", 2), q("log_5(125)", 3), q("log_2(128)", 7),
		q("log_4(256)", 4), q("log_2(1024)", 10),
	},
	6: { // trigonometry
		q("sin(30°)", 0.5), q("cos(60°)", 0.5), q("tan(45°)", 1),
		q("sin(90°)", 1), q("cos(0°)", 1), q("sin(0°)", 0),
		q("cos(90°)", 0), q("tan(0°)", 0), q("sin(45°)", 0.7071),
		q("cos(45°)", 0.7071), q("tan(30°)", 0.5774), q("sin(60°)", 0.866),
		q("cos(30°)", 0.866), q("tan(60°)", 1.732), q("sin(180°)", 0),
		q("cos(180°)", -1), q("sin(270°)", -1), q("cos(270°)", 0),
		undef("tan(90°)"), q("sin(120°)", 0.866),
	},
	7: { // fractions and percentages
		q("1/2 + 1/4", 0.75), q("3/5 + 2/5", 1.0), q("1/3 + 1/6", 0.5),
		q("50% of 200", 100), q("25% of 80", 20), q("10% of 500", 50),
		q("3/4 - 1/2", 0.25), q("2/3 + 1/3", 1), q("20% of 400", 80),
		q("5/10 + 2/10", 0.7), q("75% of 120", 90), q("1/5 of 50", 10),
		q("2/5 + 1/5", 0.6), q("30% of 300", 90), q("10% of 250", 25),
		q("40% of 150", 60), q("3/8 + 1/8", 0.5), q("60% of 90", 54),
		q("25% of 160", 40), q("80% of 50", 40),
	},
	8: { // negative numbers
		q("-3 + 7", 4), q("5 - 9", -4), q("-4 + -6", -10),
		q("-10 + 15", 5), q("8 - -3", 11), q("-7 - 2", -9),
		q("-5 + 9", 4), q("10 - -5", 15), q("-2 * 3", -6),
		q("-8 / 2", -4), q("-3 - -3", 0), q("-12 / -3", 4),
		q("-4 * -2", 8), q("-15 + 10", -5), q("-1 * 7", -7),
		q("8 + -10", -2), q("-9 / 3", -3), q("-5 + 2", -3),
		q("-6 - 4", -10), q("-2 * -5", 10),
	},
	9: { // parenthesized expressions
		q("(3 + 5) * 2", 16), q("(8 - 4) / 2", 2), q("(6 + 2) * (3 - 1)", 16),
		q("(10 / 2) + (3 * 2)", 11), q("(9 - 3) * (2 + 1)", 18),
		q("(4 + 6) / (2 + 3)", 2), q("(8 / 2) * (3 + 1)", 16),
		q("(5 + 3) * (2 + 2)", 32), q("(12 - 6) / 3", 2),
		q("(9 - 3) * 2", 12), q("(15 / 3) + (4 * 2)", 13),
		q("(18 / 6) + (5 * 3)", 17), q("(10 - 5) * 4", 20),
		q("(7 + 3) / 2", 5), q("(6 + 9) / 3", 5),
		q("(8 / 2) + 7", 11), q("(9 / 3) * 2", 6),
		q("(12 / 4) * 3", 9), q("(15 - 9) * 2", 12), q("(8 + 4) / 2", 6),
	},
	10: { // combined functions
		q("2^3 + √49", 15), q("log_10(1000) + 3^2", 12), q("sin(30°) * 10", 5),
		q("cos(60°) * 10", 5), q("tan(45°) + 2^3", 9), q("log_2(16) + √25", 9),
		q("3^3 - 2^2", 23), q("√81 + log_3(27)", 12), q("sin(90°) + cos(0°)", 2),
		q("tan(30°) * 10", 5.774), q("log_2(8) + 4^2", 19), q("√64 + 2^3", 16),
		q("3^2 + 4^2", 25), q("√100 - log_10(100)", 8), q("sin(60°)*10", 8.66),
		q("cos(30°)*10", 8.66), q("tan(60°)*5", 8.66), q("log_5(25)+√36", 8),
		q("2^5 - √49", 25), q("log_2(32)+sin(90°)", 6),
	},
}

// Level returns the questions for a level, or nil if the level is not in the bank.
func Level(level int) []Question {
	return Table[level]
}
