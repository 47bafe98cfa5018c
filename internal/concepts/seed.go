package concepts

func init() {
	tax = buildTaxonomy(seedConcepts)
}

var seedConcepts = []Concept{
	// Geometry: triangles.
	{Tag: "equilateral triangle", Area: AreaGeometry,
		Phrases:  []string{"equilateral"},
		Patterns: []string{`\b(three|3|all)\s+(equal|congruent|same[- ]length)\s+sides\b`, `\ball\s+(three\s+)?sides\s+(are\s+)?(equal|congruent|the same)\b`}},
	{Tag: "isosceles triangle", Area: AreaGeometry,
		Phrases:  []string{"isosceles"},
		Patterns: []string{`\b(two|2)\s+(equal|congruent)\s+sides\b`, `\b(two|2)\s+sides\s+(are\s+)?(equal|congruent)\b`}},
	{Tag: "scalene triangle", Area: AreaGeometry,
		Phrases:  []string{"scalene"},
		Patterns: []string{`\bno\s+(two\s+)?(equal|congruent)\s+sides\b`, `\ball\s+sides\s+(are\s+)?different\b`}},
	{Tag: "right triangle", Area: AreaGeometry,
		Phrases:  []string{"right triangle", "right-angled triangle", "hypotenuse"},
		Patterns: []string{`\b(one|a)\s+(90|ninety)[- ]degree\s+angle\b`}},
	{Tag: "acute triangle", Area: AreaGeometry,
		Phrases:  []string{"acute triangle"},
		Patterns: []string{`\ball\s+(three\s+)?angles\s+(are\s+)?(less than|under|smaller than)\s+90\b`}},
	{Tag: "obtuse triangle", Area: AreaGeometry,
		Phrases:  []string{"obtuse triangle"},
		Patterns: []string{`\b(one|an)\s+angle\s+(is\s+)?(greater than|more than|over|larger than)\s+90\b`}},
	{Tag: "pythagorean theorem", Area: AreaGeometry,
		Phrases:  []string{"pythagorean", "pythagoras"},
		Patterns: []string{`\ba\s*\^?\s*2\s*\+\s*b\s*\^?\s*2\s*=\s*c\s*\^?\s*2\b`, `a²\s*\+\s*b²\s*=\s*c²`}},
	{Tag: "triangle angle sum", Area: AreaGeometry,
		Phrases:  []string{"angle sum", "interior angles"},
		Patterns: []string{`\bangles\s+(of\s+a\s+triangle\s+)?(add|sum)\s+(up\s+)?to\s+180\b`}},
	{Tag: "area", Area: AreaGeometry,
		Phrases: []string{"area of", "square units"}},
	{Tag: "perimeter", Area: AreaGeometry,
		Phrases: []string{"perimeter"}},
	{Tag: "similar figures", Area: AreaGeometry,
		Phrases:  []string{"similar triangles", "similar figures", "scale factor"},
		Patterns: []string{`\bsame\s+shape\s+but\s+(a\s+)?different\s+size\b`}},

	// Algebra: functions.
	{Tag: "slope", Area: AreaAlgebra,
		Phrases:  []string{"slope", "gradient"},
		Patterns: []string{`\brate\s+of\s+change\b`, `\brise\s+over\s+run\b`}},
	{Tag: "y-intercept", Area: AreaAlgebra,
		Phrases:  []string{"y-intercept", "y intercept"},
		Patterns: []string{`\bcrosses\s+the\s+y[- ]axis\b`}},
	{Tag: "x-intercept", Area: AreaAlgebra,
		Phrases:  []string{"x-intercept", "x intercept"},
		Patterns: []string{`\bcrosses\s+the\s+x[- ]axis\b`}},
	{Tag: "linear function", Area: AreaAlgebra,
		Phrases:  []string{"linear function", "linear equation", "slope-intercept"},
		Patterns: []string{`\by\s*=\s*-?\d*\.?\d*\s*x\s*[+-]\s*\d`, `\bstraight\s+line\b`}},
	{Tag: "quadratic function", Area: AreaAlgebra,
		Phrases:  []string{"quadratic", "parabola"},
		Patterns: []string{`\bx\s*(\^\s*2|²)`}},
	{Tag: "vertex", Area: AreaAlgebra,
		Phrases:  []string{"vertex"},
		Patterns: []string{`\bturning\s+point\b`, `\b(maximum|minimum)\s+point\b`}},
	{Tag: "exponential function", Area: AreaAlgebra,
		Phrases:  []string{"exponential"},
		Patterns: []string{`\b(doubles|triples|halves)\s+every\b`, `\bgrowth\s+factor\b`}},
	{Tag: "absolute value", Area: AreaAlgebra,
		Phrases:  []string{"absolute value"},
		Patterns: []string{`\|\s*x\s*[+-]?\s*\d*\s*\|`}},
	{Tag: "systems of equations", Area: AreaAlgebra,
		Phrases:  []string{"system of equations", "systems of equations", "simultaneous equations"},
		Patterns: []string{`\bsolve\s+(both|the\s+two)\s+equations\b`}},
	{Tag: "inequalities", Area: AreaAlgebra,
		Phrases:  []string{"inequality", "inequalities"},
		Patterns: []string{`\b(greater|less)\s+than\s+or\s+equal\s+to\b`}},
	{Tag: "domain and range", Area: AreaAlgebra,
		Phrases: []string{"domain", "range of the function"}},

	// Number.
	{Tag: "fractions", Area: AreaNumber,
		Phrases:  []string{"fraction", "numerator", "denominator"},
		Patterns: []string{`\b\d+\s+out\s+of\s+\d+\s+(equal\s+)?(parts|pieces)\b`}},
	{Tag: "percentages", Area: AreaNumber,
		Phrases:  []string{"percent", "percentage"},
		Patterns: []string{`\d\s*%`}},
	{Tag: "ratios", Area: AreaNumber,
		Phrases:  []string{"ratio", "proportion"},
		Patterns: []string{`\bfor\s+every\s+\d+\b`}},

	// Statistics.
	{Tag: "mean", Area: AreaStatistics,
		Phrases:  []string{"mean", "average"},
		Patterns: []string{`\badd\s+(them|all\s+the\s+values)\s+up\s+and\s+divide\b`}},
	{Tag: "median", Area: AreaStatistics,
		Phrases:  []string{"median"},
		Patterns: []string{`\bmiddle\s+(value|number)\b`}},
	{Tag: "mode", Area: AreaStatistics,
		Phrases:  []string{"the mode"},
		Patterns: []string{`\bmost\s+(frequent|common)\s+(value|number)\b`}},
	{Tag: "standard deviation", Area: AreaStatistics,
		Phrases:  []string{"standard deviation"},
		Patterns: []string{`\bspread\s+(out\s+)?from\s+the\s+mean\b`}},
	{Tag: "probability", Area: AreaStatistics,
		Phrases:  []string{"probability"},
		Patterns: []string{`\b(likelihood|chance)\s+of\b`}},
	{Tag: "histogram", Area: AreaStatistics,
		Phrases: []string{"histogram", "frequency table"}},
	{Tag: "scatter plot", Area: AreaStatistics,
		Phrases:  []string{"scatter plot", "scatterplot", "line of best fit"},
		Patterns: []string{`\b(positive|negative)\s+correlation\b`}},

	// Reading and writing.
	{Tag: "main idea", Area: AreaReading,
		Phrases:  []string{"main idea", "central idea"},
		Patterns: []string{`\bwhat\s+the\s+passage\s+is\s+mostly\s+about\b`}},
	{Tag: "thesis statement", Area: AreaReading,
		Phrases: []string{"thesis"}},
	{Tag: "rhetorical purpose", Area: AreaReading,
		Phrases:  []string{"rhetorical", "author's purpose"},
		Patterns: []string{`\bwhy\s+the\s+author\s+(includes|uses|mentions)\b`}},
	{Tag: "evidence", Area: AreaReading,
		Phrases:  []string{"textual evidence", "supporting evidence"},
		Patterns: []string{`\b(supports|weakens)\s+the\s+(claim|argument)\b`}},
	{Tag: "transitions", Area: AreaReading,
		Phrases: []string{"transition word", "transitional"}},
	{Tag: "inference", Area: AreaReading,
		Phrases:  []string{"inference", "infer"},
		Patterns: []string{`\breading\s+between\s+the\s+lines\b`}},
	{Tag: "tone", Area: AreaReading,
		Phrases: []string{"author's tone", "the tone"}},
}
