package main

import (
	"fmt"

	"github.com/timurbakarov/sqltpl"
)

func main() {
	out, err := sqltpl.Build(
		"SELECT ?# FROM users WHERE status IN (?a){ AND block = ?d}{ AND name = ?}",
		sqltpl.List(sqltpl.String("id"), sqltpl.String("name")),
		sqltpl.List(sqltpl.String("active"), sqltpl.String("pending")),
		sqltpl.Skip(),
		sqltpl.String("Jack O'Neill"),
	)
	if err != nil {
		panic(err)
	}
	if err := sqltpl.Validate(out); err != nil {
		panic(err)
	}
	fmt.Println(out)
}
