/*

Goricevsyn combines GORIC(A) evidence for a fixed set of theory-based
hypotheses across independent studies. Every study contributes one
log-likelihood and one penalty value per hypothesis; the program folds
them into cumulative information criteria and evidence weights under
the added-evidence or the equal-evidence approach.

The basic usage looks like this:

	goricevsyn synthesize -approach added loglik.txt penalty.txt

Matrix files contain one row per study and one whitespace-separated
value per hypothesis; '#' starts a comment.

To see all the options run:

	goricevsyn -h

*/
package main

import (
	"bytes"
	"encoding/json"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/LeonardV/GoricEvSyn/archive"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = "branch: " + gitbranch + ", revision: " + githash + ", build time: " + buildstamp

// Logger settings.
var log = logging.MustGetLogger("goricevsyn")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("goricevsyn", "GORIC(A) evidence synthesis across studies").Version(version)

	// synthesize command
	synCmd = app.Command("synthesize", "synthesize evidence from per-study matrices").Default()
	// input matrices
	llFileName = synCmd.Arg("loglik", "per-study log-likelihood matrix").Required().ExistingFile()
	ptFileName = synCmd.Arg("penalty", "per-study penalty matrix").Required().ExistingFile()

	// synthesis parameters
	approachName = synCmd.Flag("approach", "evidence approach "+
		"(added: accumulate penalties unscaled, "+
		"equal: rescale penalties by the number of studies)").Required().Enum("added", "equal")
	studyLabelsFlag = synCmd.Flag("labels", "comma-separated study labels").String()
	hypoLabelsFlag  = synCmd.Flag("hypos", "comma-separated hypothesis labels, the last one naming the safeguard").String()

	// archive
	dbFileName = synCmd.Flag("db", "archive the run in a bolt database").String()
	runKey     = synCmd.Flag("key", "archive run name").Default("default").String()
	resume     = synCmd.Flag("resume", "extend the archived accumulator state with the supplied studies").Bool()

	// output
	plotFileName = synCmd.Flag("plot", "write the evidence-weight trajectory plot to a file (png, svg, pdf)").String()
	jsonFileName = synCmd.Flag("json", "write json output to a file").String()
	noColor      = synCmd.Flag("nocolor", "disable colors in terminal output").Bool()

	// show command
	showCmd        = app.Command("show", "print an archived synthesis run")
	showDBFileName = showCmd.Arg("db", "bolt database").Required().ExistingFile()
	showRunKey     = showCmd.Arg("key", "archive run name").Default("default").String()

	// logging
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// show prints an archived run summary as indented JSON.
func show(dbFileName, key string) {
	db, err := bolt.Open(dbFileName, 0666, &bolt.Options{ReadOnly: true})
	if err != nil {
		log.Fatal("Error opening archive:", err)
	}
	defer db.Close()

	raw, err := archive.NewRunIO(db, key).LoadSummary()
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		log.Fatal("Error decoding archived summary:", err)
	}
	buf.WriteByte('\n')
	os.Stdout.Write(buf.Bytes())
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "goricevsyn")
	logging.SetLevel(level, "evidence")
	logging.SetLevel(level, "archive")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	switch cmd {
	case showCmd.FullCommand():
		show(*showDBFileName, *showRunKey)
	default:
		settings := newSynSettings()
		summary, err := settings.run()
		if err != nil {
			log.Fatal(err)
		}

		// output summary in json format
		if *jsonFileName != "" {
			j, err := json.Marshal(summary)
			if err != nil {
				log.Error(err)
			} else {
				log.Debug(string(j))
				f, err := os.Create(*jsonFileName)
				if err != nil {
					log.Error("Error creating json output file:", err)
				} else {
					f.Write(j)
					f.Close()
				}
			}
		}
	}
}
