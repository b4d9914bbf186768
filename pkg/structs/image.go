package structs

type ImagePutResult struct {
	ImageId string `json:"imageId"`
}

type ImagesAddResult struct {
	Event  string   `json:"event"`
	Images []string `json:"images"`
}
