// Package display provides terminal output for textfinder.
//
// This package centralizes all user-facing formatting: the search report, the
// file listing and warnings. Everything writes to an io.Writer so commands can
// send output to stdout, a file or a test buffer.
//
// # Search report
//
// Reporter implements search.Reporter:
//
//	rep := display.NewReporter(os.Stdout, display.ColorAuto)
//	summary, err := searcher.Run(root, rep)
//	if err != nil {
//	    return err
//	}
//	rep.Summary(summary)
//
// Output:
//
//	/path/to/root/src
//	    main.rs
//	    lib.rs
//
//	processed 12 files in 4 directories, 2 matches
//
// # File listing
//
// FileList prints the files a search would inspect, numbered:
//
//	list := display.NewFileList(os.Stdout, len(files), color)
//	list.Start(root)
//	for _, f := range files {
//	    list.Step(f)
//	}
//	list.Complete(dirCount)
//
// # Warnings
//
//	display.PatternWarning(pattern, err).Display(os.Stderr, color)
//
// # Colors
//
// Colors come from fatih/color. In ColorAuto mode they are only used when the
// writer is a terminal (mattn/go-isatty) and NO_COLOR is not set.
package display
