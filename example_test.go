package litedb_test

import (
	"context"
	"fmt"
	"log"

	"github.com/nerrad567/litedb"
)

func Example() {
	ctx := context.Background()

	db, err := litedb.OpenPath(":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	err = db.CreateTable(ctx, "users", []litedb.Column{
		{Name: "name", Kind: litedb.KindText},
		{Name: "age", Kind: litedb.KindInteger},
		{Name: "is_underage", Kind: litedb.KindBoolean},
	})
	if err != nil {
		log.Fatal(err)
	}

	_, err = db.Execute(ctx,
		"INSERT INTO users (name, age, is_underage) VALUES (?, ?, ?)",
		litedb.Text("rayan"), litedb.Int(27), litedb.Bool(false))
	if err != nil {
		log.Fatal(err)
	}

	row, err := db.FetchOne(ctx, "SELECT name, age, is_underage FROM users")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(row[0].S, row[1].I64, row[2].I64)
	// Output: rayan 27 0
}

func ExampleDatabase_Insert() {
	ctx := context.Background()

	db, err := litedb.OpenPath(":memory:")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	err = db.CreateTable(ctx, "users", []litedb.Column{
		{Name: "name", Kind: litedb.KindText},
		{Name: "age", Kind: litedb.KindInteger},
	})
	if err != nil {
		log.Fatal(err)
	}

	affected, err := db.Insert(ctx, "users", []litedb.Field{
		{Name: "name", Value: litedb.Text("eddy")},
		{Name: "age", Value: litedb.Int(25)},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(affected)
	// Output: 1
}
