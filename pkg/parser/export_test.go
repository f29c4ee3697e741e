package parser

// ElementExpected exposes elementExpected to the external parser_test package.
const ElementExpected = elementExpected
