package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ratadie "github.com/complex-gh/ratadie_go"
)

var wide bool

func toDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-date <rata-die>",
		Short: "Decode a Rata Die into a calendar date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad day count %q: %w", args[0], err)
			}
			var d ratadie.Date
			if wide {
				if n < ratadie.MinRataDie64 || n > ratadie.MaxRataDie64 {
					return fmt.Errorf("day %d outside the 64-bit codec domain", n)
				}
				d = ratadie.ToDate64(n)
			} else {
				if n < int64(ratadie.DefaultVariant().MinRataDie()) || n > int64(ratadie.DefaultVariant().MaxRataDie()) {
					return fmt.Errorf("day %d outside the %s domain (use --wide)", n, ratadie.DefaultVariant().Name())
				}
				d = ratadie.ToDate(int32(n))
			}
			fmt.Printf("%d-%02d-%02d\n", d.Year, d.Month, d.Day)
			return nil
		},
	}
	cmd.Flags().BoolVar(&wide, "wide", false, "use the 64-bit codec")
	return cmd
}

func toOrdinalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-ordinal <rata-die>",
		Short: "Decode a Rata Die into (year, day-of-year, leap)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad day count %q: %w", args[0], err)
			}
			if n < ratadie.MinRataDie64 || n > ratadie.MaxRataDie64 {
				return fmt.Errorf("day %d outside the 64-bit codec domain", n)
			}
			o := ratadie.ToOrdinal64(n)
			fmt.Printf("year %d day %d leap %v\n", o.Year, o.DayOfYear, o.Leap)
			return nil
		},
	}
	return cmd
}

func toRataDieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-rata-die <year> <month> <day>",
		Short: "Encode a calendar date into a Rata Die",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad year %q: %w", args[0], err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("bad month %q", args[1])
			}
			day, err := strconv.Atoi(args[2])
			if err != nil || day < 1 || day > 31 {
				return fmt.Errorf("bad day %q", args[2])
			}
			fmt.Println(ratadie.ToRataDie64(year, month, day))
			return nil
		},
	}
	return cmd
}

func leapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leap <year>",
		Short: "Query the leap-year oracle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad year %q: %w", args[0], err)
			}
			fmt.Println(ratadie.IsLeap64(year))
			return nil
		},
	}
	return cmd
}

func variantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the registered codec variants and their domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			def := ratadie.DefaultVariant()
			for i := 0; i < ratadie.GetNumVariants(); i++ {
				v := ratadie.GetVariant(i)
				marker := " "
				if v == def {
					marker = "*"
				}
				status := ""
				if v.Experimental() {
					status = " (experimental)"
				}
				fmt.Printf("%s %-8s [%d, %d]%s\n", marker, v.Name(), v.MinRataDie(), v.MaxRataDie(), status)
			}
			return nil
		},
	}
	return cmd
}
