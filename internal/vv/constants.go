//    ThemataGoEngine
//    Copyright: P Themelis 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "ThemataGoEngine"
	SHORTNAME = "TGE"
	VERSION   = "0.3.1"

	// dtm defaults

	DEFAULTMINDOCFREQ = 1 // absolute count; a value in (0, 1) is a fraction of the corpus
	DEFAULTMAXDOCFREQ = 0 // 0 = unbounded

	// gibbs sampler defaults

	DEFAULTTOPICCOUNT = 5
	DEFAULTITERATIONS = 500
	DEFAULTBURNIN     = 100
	DEFAULTALPHA      = 0.1
	DEFAULTETA        = 0.01
	DEFAULTSEED       = 42

	// selector defaults

	DEFAULTKFLOOR = 2
	DEFAULTKCEIL  = 15

	// analytics defaults

	DEFAULTTOPTERMS = 8

	// messaging

	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5

	DEFAULTLOGLEVEL = MSGNOTE

	// config file

	CONFIGLOCATION = "."
	CONFIGBASIC    = "tge-conf.yaml"
)

// MetricNames - the metric curves the selector knows how to compute
var MetricNames = []string{"Arun2010", "CaoJuan2009", "Deveaud2014"}
