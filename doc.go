// Package calculator evaluates arithmetic expressions over float64.
//
// An expression is made of decimal literals such as "3", "-2.5" or ".5", the
// binary operators + - * / and ^, parentheses, and the named constants pi and
// e. Evaluation runs in three stages: Tokenize splits the text into tokens,
// ToPostfix reorders them into Reverse Polish notation with the shunting-yard
// algorithm, and Evaluate reduces the postfix sequence on an operand stack.
// An Engine ties the stages together and rewrites constant names into their
// values before tokenizing.
//
// Operators of equal precedence group to the left, and that includes ^, so
// "2^3^2" is 64. The RightAssociativePow option gives the usual 512.
package calculator
