package main

import (
	"fmt"

	ratadie "github.com/complex-gh/ratadie_go"
)

func main() {
	// Decode a day count
	d := ratadie.ToDate(20000)
	fmt.Printf("Day 20000 is %04d-%02d-%02d\n", d.Year, d.Month, d.Day)

	// Round-trip it back
	n := ratadie.ToRataDie(d.Year, d.Month, d.Day)
	fmt.Printf("Encodes back to day %d\n", n)

	// Ordinal view of the same day
	o := ratadie.ToOrdinal(20000)
	fmt.Printf("Ordinal: day %d of %d (leap: %v)\n", o.DayOfYear, o.Year, o.Leap)

	// Leap oracle
	fmt.Printf("2000 leap: %v, 1900 leap: %v\n", ratadie.IsLeap(2000), ratadie.IsLeap(1900))

	// Compare the registered codec variants on the same input
	for i := 0; i < ratadie.GetNumVariants(); i++ {
		v := ratadie.GetVariant(i)
		vd := v.ToDate(-1)
		fmt.Printf("%-8s day -1 -> %04d-%02d-%02d\n", v.Name(), vd.Year, vd.Month, vd.Day)
	}
}
