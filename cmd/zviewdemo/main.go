package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"zview"
	"zview/strview"
)

func ordering(c int) string {
	switch {
	case c < 0:
		return "less"
	case c > 0:
		return "greater"
	default:
		return "equal"
	}
}

func run(text, prefix string) error {
	owned, err := zview.CString(text)
	if err != nil {
		return err
	}
	lit := zview.Lit("hello\x00")
	p := strview.FromString(prefix)
	logrus.WithFields(logrus.Fields{
		"text":   text,
		"prefix": prefix,
	}).Debug("views built")

	fmt.Println(lit)
	fmt.Println(strview.FromString(text).HasPrefix(lit.StrView()))
	fmt.Println(lit.HasPrefix(owned.StrView()))
	fmt.Println(lit.HasPrefix(p))
	fmt.Println(owned.HasPrefix(p))
	fmt.Println(owned.Hash())
	if _, err := owned.WriteTo(os.Stdout); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(lit.Equal(strview.FromString("hello")))
	fmt.Println(zview.Equal(lit, zview.Lit("hello\x00")))
	fmt.Println(zview.Equal(lit, owned))
	fmt.Println(ordering(zview.Compare(lit, owned)))
	fmt.Println(lit.Index(lit.Len()))
	fmt.Printf("%s\n", lit)

	table := zview.NewTable[byte](0)
	for _, word := range []string{"hello", "world", "hello"} {
		table.Intern(strview.FromString(word))
	}
	stats := table.Stats()
	logrus.WithFields(logrus.Fields{
		"items": stats.Items,
		"gets":  stats.Gets,
		"hits":  stats.Hits,
	}).Debug("intern table")
	return nil
}

func main() {
	var text, prefix string
	var verbose bool
	flag.StringVar(&text, "text", "hello world", "owned string to view")
	flag.StringVar(&prefix, "prefix", "hello", "prefix to test against both views")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging?")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(text, prefix); err != nil {
		logrus.Fatalf("zviewdemo: %v", err)
	}
}
