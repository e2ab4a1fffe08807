// Command genmock generates a synthetic evacuation-order alert file and a
// matching FIPS reference file for local runs and fixtures. The alert rows
// deliberately exercise every cleanup rule: connector words, statewide
// phrases, known typos, missing commas, trailing punctuation, pre-supplied
// FIPS codes, and the protected "King and Queen" name.
//
// Usage:
//
//	go run ./cmd/genmock -alerts-out data/mock/alerts.csv -reference-out data/mock/reference.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// referenceRow mirrors the census source shape: names carry their
// "County"/"Parish"/"city" suffixes and are canonicalized at load time.
type referenceRow struct {
	state  string
	county string
	fips   string
}

var referenceRows = []referenceRow{
	{"TX", "Aransas County", "48007"},
	{"TX", "Brazoria County", "48039"},
	{"TX", "Calhoun County", "48057"},
	{"TX", "Cameron County", "48061"},
	{"TX", "Comal County", "48091"},
	{"TX", "Galveston County", "48167"},
	{"TX", "Harris County", "48201"},
	{"TX", "Jasper County", "48241"},
	{"TX", "Jefferson County", "48245"},
	{"TX", "Matagorda County", "48321"},
	{"TX", "Newton County", "48351"},
	{"TX", "Nueces County", "48355"},
	{"TX", "Orange County", "48361"},
	{"TX", "Refugio County", "48391"},
	{"TX", "Sabine County", "48403"},
	{"TX", "San Augustine County", "48405"},
	{"TX", "San Patricio County", "48409"},
	{"TX", "Victoria County", "48469"},
	{"TX", "Willacy County", "48489"},
	{"LA", "Beauregard Parish", "22011"},
	{"LA", "Cameron Parish", "22023"},
	{"LA", "De Soto Parish", "22031"},
	{"LA", "Jefferson Parish", "22051"},
	{"LA", "Lafourche Parish", "22057"},
	{"LA", "Orleans Parish", "22071"},
	{"LA", "Plaquemines Parish", "22075"},
	{"LA", "St. Charles Parish", "22089"},
	{"LA", "St. John the Baptist Parish", "22095"},
	{"LA", "Terrebonne Parish", "22109"},
	{"FL", "Broward County", "12011"},
	{"FL", "Charlotte County", "12015"},
	{"FL", "Collier County", "12021"},
	{"FL", "DeSoto County", "12027"},
	{"FL", "Escambia County", "12033"},
	{"FL", "Lee County", "12071"},
	{"FL", "Miami-Dade County", "12086"},
	{"FL", "Monroe County", "12087"},
	{"FL", "Okaloosa County", "12091"},
	{"FL", "St. Lucie County", "12111"},
	{"GA", "Bryan County", "13029"},
	{"GA", "Camden County", "13039"},
	{"GA", "Chatham County", "13051"},
	{"GA", "Glynn County", "13127"},
	{"GA", "Liberty County", "13179"},
	{"GA", "McIntosh County", "13191"},
	{"SC", "Beaufort County", "45013"},
	{"SC", "Charleston County", "45019"},
	{"SC", "Colleton County", "45029"},
	{"SC", "Georgetown County", "45043"},
	{"SC", "Horry County", "45051"},
	{"SC", "Jasper County", "45053"},
	{"NC", "Brunswick County", "37019"},
	{"NC", "Carteret County", "37031"},
	{"NC", "Currituck County", "37053"},
	{"NC", "Dare County", "37055"},
	{"NC", "Hyde County", "37095"},
	{"NC", "New Hanover County", "37129"},
	{"NC", "Onslow County", "37133"},
	{"NC", "Pender County", "37141"},
	{"VA", "Accomack County", "51001"},
	{"VA", "King and Queen County", "51097"},
	{"VA", "Chesapeake city", "51550"},
	{"VA", "Hampton city", "51650"},
	{"VA", "Newport News city", "51700"},
	{"VA", "Norfolk city", "51710"},
	{"VA", "Poquoson city", "51735"},
	{"VA", "Portsmouth city", "51740"},
	{"VA", "Suffolk city", "51800"},
	{"VA", "Virginia Beach city", "51810"},
	{"MS", "DeSoto County", "28033"},
	{"MS", "Hancock County", "28045"},
	{"MS", "Harrison County", "28047"},
	{"MS", "Jackson County", "28059"},
	{"AL", "Baldwin County", "01003"},
	{"AL", "Mobile County", "01097"},
}

// alertRow is one synthetic evacuation order. county "NA" means the source
// field was missing (statewide order).
type alertRow struct {
	storm  string
	state  string
	county string
	fips   string
	year   string
	source string // passthrough column
}

var alertRows = []alertRow{
	{"Hurricane Harvey", "TX", "Aransas, Calhoun, Refugio, San Patricio", "NA", "2017", "press_release"},
	{"Hurricane Harvey", "TX", "Brazoria & Galveston", "NA", "2017", "news_archive"},
	{"Hurricane Harvey", "TX", "Coma!", "NA", "2017", "news_archive"},
	{"Hurricane Harvey", "TX", "Jasper Newton", "NA", "2017", "press_release"},
	{"Hurricane Harvey", "TX", "Sabine/San Augustine", "NA", "2017", "press_release"},
	{"Hurricane Ike", "TX", "Galvaston County and Harris County", "NA", "2008", "news_archive"},
	{"Hurricane Ike", "TX", "Matagora; Victoria", "NA", "2008", "news_archive"},
	{"Hurricane Rita", "TX", "Jefferson County.", "NA", "2005", "press_release"},
	{"Hurricane Katrina", "LA", "St John the Baptist", "NA", "2005", "press_release"},
	{"Hurricane Katrina", "LA", "Saint Charles and Plaquemines", "NA", "2005", "news_archive"},
	{"Hurricane Katrina", "LA", "Beaureguard Parish", "NA", "2005", "news_archive"},
	{"Hurricane Gustav", "LA", "Statewide", "NA", "2008", "press_release"},
	{"Hurricane Irma", "FL", "NA", "NA", "2017", "press_release"},
	{"Hurricane Irma", "FL", "Monroe", "12087", "2017", "press_release"},
	{"Hurricane Charley", "FL", "De Soto", "NA", "2004", "news_archive"},
	{"Hurricane Matthew", "GA", "Bryan, Camden, Chatham", "NA", "2016", "press_release"},
	{"Hurricane Matthew", "GA", "6 counties", "NA", "2016", "news_archive"},
	{"Hurricane Matthew", "SC", "Entire State", "NA", "2016", "press_release"},
	{"Hurricane Floyd", "NC", "All Counties", "NA", "1999", "news_archive"},
	{"Hurricane Isabel", "VA", "Suffolk", "NA", "2003", "press_release"},
	{"Hurricane Isabel", "VA", "King and Queen, Accomack", "NA", "2003", "press_release"},
	{"Hurricane Katrina", "MS", "De Soto", "NA", "2005", "news_archive"},
	{"Hurricane Ivan", "AL", "Baldwin and Mobile", "NA", "2004", "press_release"},
	{"Hurricane Ivan", "AL", "", "NA", "2004", "news_archive"},
}

func main() {
	alertsOut := flag.String("alerts-out", "data/mock/alerts.csv", "path for the synthetic alert file")
	referenceOut := flag.String("reference-out", "data/mock/reference.csv", "path for the synthetic reference file")
	flag.Parse()

	if err := run(*alertsOut, *referenceOut); err != nil {
		log.Fatal(err)
	}
}

func run(alertsPath, referencePath string) error {
	if err := writeReference(referencePath); err != nil {
		return fmt.Errorf("writing reference fixture: %w", err)
	}
	log.Printf("wrote reference fixture: %s (%d rows)", referencePath, len(referenceRows))

	if err := writeAlerts(alertsPath); err != nil {
		return fmt.Errorf("writing alert fixture: %w", err)
	}
	log.Printf("wrote alert fixture: %s (%d rows)", alertsPath, len(alertRows))
	return nil
}

func writeReference(path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"state", "county", "fips"}); err != nil {
			return err
		}
		for _, r := range referenceRows {
			if err := w.Write([]string{r.state, r.county, r.fips}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeAlerts(path string) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"storm", "state", "county", "county_fips", "year", "source"}); err != nil {
			return err
		}
		for _, r := range alertRows {
			if err := w.Write([]string{r.storm, r.state, r.county, r.fips, r.year, r.source}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, write func(*csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
