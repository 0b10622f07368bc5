package main

// style holds ANSI escape codes; all fields are empty when output is plain.
type style struct {
	red, green, yell, cyan, bold, und, zero string
}

func newStyle(codes bool) style {
	if !codes {
		return style{}
	}
	return style{
		red:   "\033[31m",
		green: "\033[32m",
		yell:  "\033[33m",
		cyan:  "\033[36m",
		bold:  "\033[1m",
		und:   "\033[4m",
		zero:  "\033[0m",
	}
}
