package pclasso

import (
	"errors"
	"sort"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

var errNilPointCloud = errors.New("nil point cloud")

// Entry is a selectable entity.
type Entry struct {
	ID       string
	Position mat.Vec3
}

// Entries is a list of entities usable as Selector candidates.
type Entries []Entry

var _ pc.Vec3RandomAccessor = Entries(nil)

func (e Entries) Vec3At(i int) mat.Vec3 {
	return e[i].Position
}

func (e Entries) Len() int {
	return len(e)
}

func (e Entries) RawIndexAt(i int) int {
	return i
}

// IDs returns identifiers of the entries at the given indices.
func (e Entries) IDs(indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, e[i].ID)
	}
	return out
}

// PointCloudCandidates returns the points of the cloud as candidates.
func PointCloudCandidates(pp *pc.PointCloud) (pc.Vec3RandomAccessor, error) {
	if pp == nil {
		return nil, errNilPointCloud
	}
	if pp.Points == 0 {
		return pc.Vec3Slice(nil), nil
	}
	return pp.Vec3Iterator()
}

// ExtractSelected returns a new cloud consisting of the selected points.
func ExtractSelected(pp *pc.PointCloud, indices []int) (*pc.PointCloud, error) {
	if pp == nil {
		return nil, errNilPointCloud
	}
	if !sort.IntsAreSorted(indices) {
		indices = append([]int{}, indices...)
		sort.Ints(indices)
	}
	pcNew := &pc.PointCloud{
		PointCloudHeader: pp.PointCloudHeader.Clone(),
		Data:             make([]byte, len(indices)*pp.Stride()),
	}

	var j, is, js, cnt int
	for _, i := range indices {
		if i < 0 || i >= pp.Points {
			return nil, errors.New("index out of range")
		}
		if cnt > 0 && i < is+cnt {
			continue
		}
		if cnt > 0 && i == is+cnt {
			cnt++
			continue
		}
		if cnt > 0 {
			pc.Copy(pcNew, js, pp, is, cnt)
			j += cnt
		}
		is, js, cnt = i, j, 1
	}
	if cnt > 0 {
		pc.Copy(pcNew, js, pp, is, cnt)
		j += cnt
	}

	pcNew.Points = j
	pcNew.Width = j
	pcNew.Height = 1
	pcNew.Data = pcNew.Data[: j*pcNew.Stride() : j*pcNew.Stride()]
	return pcNew, nil
}

// LabelSelected returns a copy of the cloud with the label of the selected
// points set to l. A label field is added if the cloud has none.
func LabelSelected(pp *pc.PointCloud, indices []int, l uint32) (*pc.PointCloud, error) {
	if pp == nil {
		return nil, errNilPointCloud
	}
	pcNew, err := withLabel(pp)
	if err != nil {
		return nil, err
	}
	sel := make([]bool, pcNew.Points)
	for _, i := range indices {
		if i < 0 || i >= len(sel) {
			return nil, errors.New("index out of range")
		}
		sel[i] = true
	}
	if pcNew.Points == 0 {
		return pcNew, nil
	}
	lt, err := pcNew.Uint32Iterator("label")
	if err != nil {
		return nil, err
	}
	for i := 0; lt.IsValid(); i++ {
		if sel[i] {
			lt.SetUint32(l)
		}
		lt.Incr()
	}
	return pcNew, nil
}

func withLabel(pp *pc.PointCloud) (*pc.PointCloud, error) {
	for _, f := range pp.Fields {
		if f == "label" {
			pcNew := &pc.PointCloud{
				PointCloudHeader: pp.PointCloudHeader.Clone(),
				Points:           pp.Points,
				Data:             make([]byte, len(pp.Data)),
			}
			copy(pcNew.Data, pp.Data)
			return pcNew, nil
		}
	}

	pcNew := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version:   pp.Version,
			Fields:    []string{"x", "y", "z", "label"},
			Size:      []int{4, 4, 4, 4},
			Type:      []string{"F", "F", "F", "U"},
			Count:     []int{1, 1, 1, 1},
			Viewpoint: pp.Viewpoint,
			Width:     pp.Points,
			Height:    1,
		},
		Points: pp.Points,
	}
	pcNew.Data = make([]byte, pp.Points*pcNew.Stride())
	if pp.Points == 0 {
		return pcNew, nil
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	jt, err := pcNew.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for it.IsValid() && jt.IsValid() {
		jt.SetVec3(it.Vec3())
		jt.Incr()
		it.Incr()
	}
	return pcNew, nil
}
