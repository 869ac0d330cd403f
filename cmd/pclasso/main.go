// Command pclasso selects points of a PCD file with a lasso drawn by
// scripted clicks.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/pclasso"
)

func main() {
	sessionPath := flag.String("config", "session.yaml", "session file")
	inPath := flag.String("in", "", "input PCD file")
	outPath := flag.String("out", "selected.pcd", "output PCD file")
	label := flag.Int("label", -1, "label selected points instead of extracting them")
	verbose := flag.Bool("v", false, "verbose log")
	flag.Parse()

	if err := run(*sessionPath, *inPath, *outPath, *label, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(sessionPath, inPath, outPath string, label int, verbose bool) error {
	fs, err := os.Open(sessionPath)
	if err != nil {
		return err
	}
	s, err := readSession(fs)
	fs.Close()
	if err != nil {
		return err
	}

	fi, err := os.Open(inPath)
	if err != nil {
		return err
	}
	pp, err := pc.Unmarshal(fi)
	fi.Close()
	if err != nil {
		return err
	}
	candidates, err := pclasso.PointCloudCandidates(pp)
	if err != nil {
		return err
	}

	var result *pclasso.Result
	sel := s.Config.NewSelector(pclasso.StaticCamera(s.pose()), &pclasso.ListenerFuncs{
		OnSelectionComputed: func(r pclasso.Result) {
			result = &r
		},
	})
	if verbose {
		sel.Logger = log.Default()
	}
	sel.SetCandidates(candidates)
	sel.SetMode(pclasso.ModeSelect)

	in := pclasso.NewInput(sel, s.Viewport.Width, s.Viewport.Height)
	for _, c := range s.Clicks {
		e := pclasso.MouseEvent{X: c[0], Y: c[1], Button: pclasso.ButtonPrimary}
		if !in.Click(e) {
			log.Printf("click at (%d, %d) ignored", c[0], c[1])
		}
	}
	if result == nil {
		return errors.New("lasso polygon is not closed")
	}
	log.Printf("%d of %d points selected", len(result.Indices), pp.Points)

	var out *pc.PointCloud
	if label >= 0 {
		out, err = pclasso.LabelSelected(pp, result.Indices, uint32(label))
	} else {
		out, err = pclasso.ExtractSelected(pp, result.Indices)
	}
	if err != nil {
		return err
	}

	fo, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := pc.Marshal(out, fo); err != nil {
		fo.Close()
		return err
	}
	return fo.Close()
}
