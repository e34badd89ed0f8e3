// Package sqlgen renders the INSERT statements of the tifosi schema.
package sqlgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Quote renders s as a SQL string literal, doubling single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Use selects the target database.
func Use(database string) string {
	return fmt.Sprintf("USE %s;", database)
}

func InsertMarque(nom string) string {
	return fmt.Sprintf("INSERT INTO marque (nom) VALUES (%s);", Quote(nom))
}

// InsertBoisson resolves the brand by name at load time.
func InsertBoisson(nom, marque string) string {
	return fmt.Sprintf("INSERT INTO boisson (nom, id_marque) VALUES (%s, "+
		"(SELECT id_marque FROM marque WHERE nom = %s));", Quote(nom), Quote(marque))
}

func InsertIngredient(nom string) string {
	return fmt.Sprintf("INSERT INTO ingredient (nom) VALUES (%s);", Quote(nom))
}

func InsertFocaccia(nom string, prix float64) string {
	return fmt.Sprintf("INSERT INTO focaccia (nom, prix) VALUES (%s, %s);",
		Quote(nom), strconv.FormatFloat(prix, 'f', -1, 64))
}

// InsertComprend links a focaccia to an ingredient, both resolved by name.
func InsertComprend(focaccia, ingredient string, quantite int) string {
	return fmt.Sprintf("INSERT INTO comprend (id_focaccia, id_ingredient, quantite) "+
		"SELECT f.id_focaccia, i.id_ingredient, %d "+
		"FROM focaccia f, ingredient i "+
		"WHERE f.nom = %s "+
		"AND i.nom = %s;", quantite, Quote(focaccia), Quote(ingredient))
}
