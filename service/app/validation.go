package app

import "fmt"

func (j RenderJob) Validate() error {
	if j.PageWidth == 0 {
		return fmt.Errorf("page width can not be zero")
	}

	if len(j.Document) == 0 {
		return fmt.Errorf("document can not be empty")
	}

	return nil
}
