package syntax

// Named node kinds produced by the PowerOn grammar.
const (
	KindSourceFile          = "source_file"
	KindComment             = "comment"
	KindError               = "ERROR"
	KindTargetDivision      = "target_division"
	KindDefineDivision      = "define_division"
	KindSetupDivision       = "setup_division"
	KindSelectDivision      = "select_division"
	KindSortDivision        = "sort_division"
	KindPrintDivision       = "print_division"
	KindTotalDivision       = "total_division"
	KindProcedureDefinition = "procedure_definition"
	KindVariableDeclaration = "variable_declaration"
	KindDataType            = "data_type"
	KindArrayDimensions     = "array_dimensions"
	KindIncludeStatement    = "include_statement"
	KindHeadersBlock        = "headers_block"
	KindTrailersBlock       = "trailers_block"
	KindDoBlock             = "do_block"
	KindIfStatement         = "if_statement"
	KindWhileStatement      = "while_statement"
	KindForStatement        = "for_statement"
	KindForEachStatement    = "for_each_statement"
	KindPrintStatement      = "print_statement"
	KindAssignment          = "assignment"
	KindExpressionStatement = "expression_statement"
	KindProcedureCall       = "procedure_call"
	KindFunctionCall        = "function_call"
	KindArgumentList        = "argument_list"
	KindBinaryExpression    = "binary_expression"
	KindUnaryExpression     = "unary_expression"
	KindParenthesized       = "parenthesized_expression"
	KindFieldReference      = "field_reference"
	KindRecordType          = "record_type"
	KindFieldName           = "field_name"
	KindIdentifier          = "identifier"
	KindStringLiteral       = "string_literal"
	KindNumberLiteral       = "number_literal"
	KindMoneyLiteral        = "money_literal"
	KindDateLiteral         = "date_literal"
)

// Field names under which children are attached to their parents.
const (
	FieldName        = "name"
	FieldType        = "type"
	FieldValue       = "value"
	FieldDimensions  = "dimensions"
	FieldPath        = "path"
	FieldTitle       = "title"
	FieldCondition   = "condition"
	FieldConsequence = "consequence"
	FieldAlternative = "alternative"
	FieldBody        = "body"
	FieldRecord      = "record"
	FieldFilter      = "filter"
	FieldStart       = "start"
	FieldStop        = "stop"
	FieldStep        = "step"
	FieldLeft        = "left"
	FieldRight       = "right"
	FieldOperator    = "operator"
	FieldOperand     = "operand"
	FieldArguments   = "arguments"
	FieldField       = "field"
)

var namedKinds = map[string]bool{
	KindSourceFile: true, KindComment: true, KindError: true,
	KindTargetDivision: true, KindDefineDivision: true, KindSetupDivision: true,
	KindSelectDivision: true, KindSortDivision: true, KindPrintDivision: true,
	KindTotalDivision: true, KindProcedureDefinition: true,
	KindVariableDeclaration: true, KindDataType: true, KindArrayDimensions: true,
	KindIncludeStatement: true, KindHeadersBlock: true, KindTrailersBlock: true,
	KindDoBlock: true, KindIfStatement: true, KindWhileStatement: true,
	KindForStatement: true, KindForEachStatement: true, KindPrintStatement: true,
	KindAssignment: true, KindExpressionStatement: true, KindProcedureCall: true,
	KindFunctionCall: true, KindArgumentList: true, KindBinaryExpression: true,
	KindUnaryExpression: true, KindParenthesized: true, KindFieldReference: true,
	KindRecordType: true, KindFieldName: true, KindIdentifier: true,
	KindStringLiteral: true, KindNumberLiteral: true, KindMoneyLiteral: true,
	KindDateLiteral: true,
}

var fieldNames = map[string]bool{
	FieldName: true, FieldType: true, FieldValue: true, FieldDimensions: true,
	FieldPath: true, FieldTitle: true, FieldCondition: true,
	FieldConsequence: true, FieldAlternative: true, FieldBody: true,
	FieldRecord: true, FieldFilter: true, FieldStart: true, FieldStop: true,
	FieldStep: true, FieldLeft: true, FieldRight: true, FieldOperator: true,
	FieldOperand: true, FieldArguments: true, FieldField: true,
}

// IsNamedKind reports whether kind is a named node kind of the grammar.
func IsNamedKind(kind string) bool { return namedKinds[kind] }

// IsField reports whether field is a field name used by the grammar.
func IsField(field string) bool { return fieldNames[field] }
